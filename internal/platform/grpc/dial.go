// Package grpc provides shared client plumbing for raffle-internal gRPC
// connections: default dial options and health-gated dialing.
package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// dialContext is swapped in tests to exercise connect failures without a
// network endpoint.
var dialContext = gogrpc.DialContext

// DialStage names the phase where a health-gated dial failed.
type DialStage string

const (
	// DialStageConnect means the connection itself could not be established.
	DialStageConnect DialStage = "connect"
	// DialStageHealth means the endpoint connected but never reported SERVING.
	DialStageHealth DialStage = "health"
)

// DialError reports a failed dial together with the stage that failed, so
// the keeper can tell an unreachable raffle endpoint apart from one that is
// up but not yet serving.
type DialError struct {
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultClientDialOptions returns the standard options for raffle-internal
// clients: plaintext transport, a blocking dial, and the OTel stats handler
// so outbound calls carry trace context when tracing is enabled.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithBlock(),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// DialWithHealth dials a gRPC endpoint and waits until its health check
// reports SERVING, closing the connection if it never does. The keeper uses
// it to gate startup on the raffle service being ready.
func DialWithHealth(ctx context.Context, addr string, dialTimeout time.Duration, logf func(string, ...any), opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	dialCtx := ctx
	if dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}

	conn, err := dialContext(dialCtx, addr, opts...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}
	if err := WaitForHealth(dialCtx, conn, "", logf); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}
