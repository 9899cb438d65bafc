// Package keeper runs the upkeep poller against the raffle service.
package keeper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	rafflev1 "github.com/louisbranch/raffle/api/gen/go/raffle/v1"
	platformgrpc "github.com/louisbranch/raffle/internal/platform/grpc"
	"github.com/louisbranch/raffle/internal/platform/timeouts"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Config describes a keeper runtime.
type Config struct {
	// RaffleAddr is the raffle gRPC endpoint to poll.
	RaffleAddr string
	// PollInterval is how often the eligibility predicate is checked.
	PollInterval time.Duration
	// DialTimeout bounds the initial dial plus health gate.
	DialTimeout time.Duration
}

// Runtime polls the raffle service and triggers draws when the round is
// eligible. It serves its own gRPC health endpoint so orchestrators can gate
// on keeper liveness.
type Runtime struct {
	cfg      Config
	client   rafflev1.RaffleServiceClient
	conn     *grpc.ClientConn
	listener net.Listener
	grpcSrv  *grpc.Server
	health   *health.Server
}

// New dials the raffle service with health gating and prepares the keeper
// health endpoint on the provided port.
func New(ctx context.Context, cfg Config, port int) (*Runtime, error) {
	if cfg.RaffleAddr == "" {
		return nil, fmt.Errorf("raffle address is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = timeouts.GRPCDial
	}

	conn, err := platformgrpc.DialWithHealth(ctx, cfg.RaffleAddr, cfg.DialTimeout, log.Printf, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("dial raffle service: %w", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("listen on :%d: %w", port, err)
	}

	grpcSrv := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Runtime{
		cfg:      cfg,
		client:   rafflev1.NewRaffleServiceClient(conn),
		conn:     conn,
		listener: listener,
		grpcSrv:  grpcSrv,
		health:   healthServer,
	}, nil
}

// NewWithClient builds a keeper runtime around an existing client, without a
// health endpoint. Used by tests and embedders.
func NewWithClient(cfg Config, client rafflev1.RaffleServiceClient) (*Runtime, error) {
	if client == nil {
		return nil, fmt.Errorf("raffle client is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	return &Runtime{cfg: cfg, client: client}, nil
}

// Addr returns the keeper health listener address.
func (r *Runtime) Addr() string {
	if r == nil || r.listener == nil {
		return ""
	}
	return r.listener.Addr().String()
}

// Run polls the raffle service until context cancellation.
func (r *Runtime) Run(ctx context.Context) error {
	if r == nil {
		return errors.New("runtime is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer r.Close()

	if r.grpcSrv != nil && r.listener != nil {
		go func() {
			if err := r.grpcSrv.Serve(r.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				log.Printf("keeper health server: %v", err)
			}
		}()
		log.Printf("keeper health listening at %v", r.listener.Addr())
	}

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		r.tick(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Close releases keeper resources.
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	if r.health != nil {
		r.health.Shutdown()
	}
	if r.grpcSrv != nil {
		r.grpcSrv.GracefulStop()
	}
	if r.listener != nil {
		_ = r.listener.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

func (r *Runtime) tick(ctx context.Context) {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	check, err := r.client.CheckUpkeep(callCtx, &rafflev1.CheckUpkeepRequest{})
	if err != nil {
		log.Printf("keeper: check upkeep: %v", err)
		return
	}
	if !check.GetEligible() {
		return
	}

	perform, err := r.client.PerformUpkeep(callCtx, &rafflev1.PerformUpkeepRequest{})
	if err != nil {
		logUpkeepRejection(err)
		return
	}
	log.Printf("keeper: draw triggered, request %s", perform.GetRequestId())
}

// logUpkeepRejection logs the diagnostic metadata attached when an upkeep
// call loses the race against another trigger.
func logUpkeepRejection(err error) {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.FailedPrecondition {
		log.Printf("keeper: perform upkeep: %v", err)
		return
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			log.Printf("keeper: upkeep not needed: state=%s participants=%s balance=%s",
				info.Metadata["State"], info.Metadata["Participants"], info.Metadata["Balance"])
			return
		}
	}
	log.Printf("keeper: perform upkeep: %v", err)
}
