package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout = time.Second
	healthBackoffStart = 200 * time.Millisecond
	healthBackoffMax   = time.Second
)

// WaitForHealth polls the standard gRPC health service until it reports
// SERVING or ctx ends. An empty service name checks overall server health;
// callers gating on a specific API pass its registered service name, e.g.
// "raffle.v1.RaffleService".
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	backoff := healthBackoffStart
	for {
		probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
		response, err := client.Check(probeCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()

		switch {
		case err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			if logf != nil {
				logf("health check for %q is SERVING", service)
			}
			return nil
		case err != nil:
			if logf != nil {
				logf("waiting for health of %q: %v", service, err)
			}
		default:
			if logf != nil {
				logf("waiting for health of %q: status %s", service, response.GetStatus())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > healthBackoffMax {
			backoff = healthBackoffMax
		}
	}
}
