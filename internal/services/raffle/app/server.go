// Package server wires the raffle runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	rafflev1 "github.com/louisbranch/raffle/api/gen/go/raffle/v1"
	"github.com/louisbranch/raffle/internal/platform/config"
	raffleservice "github.com/louisbranch/raffle/internal/services/raffle/api/grpc/raffle"
	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
	"github.com/louisbranch/raffle/internal/services/raffle/events"
	rafflesqlite "github.com/louisbranch/raffle/internal/services/raffle/storage/sqlite"
	"github.com/louisbranch/raffle/internal/services/raffle/vrf"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath        string        `env:"RAFFLE_DB_PATH"`
	StakeAmount   uint64        `env:"RAFFLE_STAKE_AMOUNT" envDefault:"100"`
	RoundInterval time.Duration `env:"RAFFLE_ROUND_INTERVAL" envDefault:"5m"`
	VRFKeyset     string        `env:"RAFFLE_VRF_KEYSET" envDefault:"primary"`
	VRFDelay      time.Duration `env:"RAFFLE_VRF_DELAY" envDefault:"2s"`
	RetryBackoff  time.Duration `env:"RAFFLE_VRF_RETRY_BACKOFF" envDefault:"250ms"`
	RetryAttempts int           `env:"RAFFLE_VRF_RETRY_ATTEMPTS" envDefault:"3"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "raffle.db")
	}
	return cfg
}

// Server hosts the raffle gRPC API, the round machine, and the randomness
// coordinator lifecycle.
type Server struct {
	listener    net.Listener
	grpcServer  *grpc.Server
	health      *health.Server
	store       *rafflesqlite.Store
	coordinator *vrf.Coordinator
	machine     *round.Machine
}

// New creates a configured raffle server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured raffle server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, err := openRaffleStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	// The machine and the coordinator reference each other: the machine asks
	// the coordinator for draws, the coordinator fulfills them back into the
	// machine. The seam is broken with a late-bound fulfiller.
	fulfiller := &machineFulfiller{}
	coordinator, err := vrf.New(fulfiller, vrf.WithRetry(env.RetryBackoff, env.RetryAttempts))
	if err != nil {
		_ = store.Close()
		_ = listener.Close()
		return nil, fmt.Errorf("create randomness coordinator: %w", err)
	}

	machine, err := round.NewMachine(
		round.Config{
			StakeAmount: env.StakeAmount,
			Interval:    env.RoundInterval,
			Request: round.RequestParams{
				KeysetLabel:      env.VRFKeyset,
				FulfillmentDelay: env.VRFDelay,
			},
		},
		store,
		coordinator,
		round.WithEvents(events.NewEmitter(store)),
	)
	if err != nil {
		coordinator.Close()
		_ = store.Close()
		_ = listener.Close()
		return nil, fmt.Errorf("create round machine: %w", err)
	}
	fulfiller.machine = machine

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := raffleservice.NewService(machine, store)
	healthServer := health.NewServer()
	rafflev1.RegisterRaffleServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("raffle.v1.RaffleService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:    listener,
		grpcServer:  grpcServer,
		health:      healthServer,
		store:       store,
		coordinator: coordinator,
		machine:     machine,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Machine exposes the round machine for in-process callers.
func (s *Server) Machine() *round.Machine {
	if s == nil {
		return nil
	}
	return s.machine
}

// Run creates and serves a raffle server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("raffle server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases raffle server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.coordinator != nil {
		s.coordinator.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close raffle store: %v", err)
		}
	}
}

// machineFulfiller forwards fulfillments to the round machine once it exists.
type machineFulfiller struct {
	machine *round.Machine
}

func (f *machineFulfiller) FulfillRandomValue(ctx context.Context, requestID string, randomValue uint64) (round.Winner, error) {
	if f == nil || f.machine == nil {
		return round.Winner{}, errors.New("round machine is not configured")
	}
	return f.machine.FulfillRandomValue(ctx, requestID, randomValue)
}

func openRaffleStore(path string) (*rafflesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := rafflesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raffle sqlite store: %w", err)
	}
	return store, nil
}
