// Package vrf coordinates asynchronous randomness draws.
//
// The coordinator stands in for an external randomness beacon: a draw is
// requested with opaque provider parameters, and after the configured delay
// the coordinator fulfills it exactly once with a fresh random value. Only
// the coordinator holds the fulfiller reference, so nothing else can inject
// a fulfillment.
package vrf

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"sync"
	"time"

	apperrors "github.com/louisbranch/raffle/internal/errors"
	"github.com/louisbranch/raffle/internal/platform/id"
	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
)

const (
	// DefaultRetryBackoff is the pause between fulfillment retries after a
	// failed winner payout.
	DefaultRetryBackoff = 250 * time.Millisecond
	// DefaultMaxAttempts bounds how many times a draw fulfillment is tried.
	DefaultMaxAttempts = 3
)

// Fulfiller resolves a pending draw with the supplied random value.
type Fulfiller interface {
	FulfillRandomValue(ctx context.Context, requestID string, randomValue uint64) (round.Winner, error)
}

type requestState int

const (
	statePending requestState = iota
	stateResolved
)

// Coordinator owns draw request correlation and asynchronous fulfillment.
type Coordinator struct {
	fulfiller    Fulfiller
	newID        func() (string, error)
	drawValue    func() (uint64, error)
	retryBackoff time.Duration
	maxAttempts  int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	requests map[string]requestState
}

// Option configures optional coordinator behavior.
type Option func(*Coordinator)

// WithRetry overrides the fulfillment retry policy.
func WithRetry(backoff time.Duration, maxAttempts int) Option {
	return func(c *Coordinator) {
		if backoff >= 0 {
			c.retryBackoff = backoff
		}
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
	}
}

// WithDrawValue overrides the random value source.
func WithDrawValue(draw func() (uint64, error)) Option {
	return func(c *Coordinator) {
		if draw != nil {
			c.drawValue = draw
		}
	}
}

// WithIDGenerator overrides the request ID generator.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(c *Coordinator) {
		if newID != nil {
			c.newID = newID
		}
	}
}

// New returns a coordinator that fulfills draws against the given fulfiller.
func New(fulfiller Fulfiller, opts ...Option) (*Coordinator, error) {
	if fulfiller == nil {
		return nil, fmt.Errorf("vrf: fulfiller is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		fulfiller:    fulfiller,
		newID:        id.NewID,
		drawValue:    cryptoDrawValue,
		retryBackoff: DefaultRetryBackoff,
		maxAttempts:  DefaultMaxAttempts,
		ctx:          ctx,
		cancel:       cancel,
		requests:     map[string]requestState{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close stops pending fulfillment workers and waits for them to finish.
func (c *Coordinator) Close() {
	c.cancel()
	c.wg.Wait()
}

// RequestDraw registers a new draw request and schedules its fulfillment
// after the configured delay. It implements round.DrawRequester.
func (c *Coordinator) RequestDraw(_ context.Context, params round.RequestParams) (string, error) {
	requestID, err := c.newID()
	if err != nil {
		return "", fmt.Errorf("generate draw request id: %w", err)
	}

	c.mu.Lock()
	c.requests[requestID] = statePending
	c.mu.Unlock()

	c.wg.Add(1)
	go c.fulfillAfter(requestID, params)

	return requestID, nil
}

// Outstanding reports how many draw requests await fulfillment.
func (c *Coordinator) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, state := range c.requests {
		if state == statePending {
			n++
		}
	}
	return n
}

// Fulfill resolves an outstanding draw request with the given random value.
//
// Unknown request IDs and already-resolved requests are rejected without
// touching the round. A failed winner payout keeps the request outstanding
// so the same fulfillment can be retried.
func (c *Coordinator) Fulfill(ctx context.Context, requestID string, randomValue uint64) (round.Winner, error) {
	c.mu.Lock()
	state, ok := c.requests[requestID]
	c.mu.Unlock()
	if !ok {
		return round.Winner{}, apperrors.WithMetadata(apperrors.CodeDrawRequestUnknown, "draw request is not outstanding", map[string]string{
			"RequestID": requestID,
		})
	}
	if state == stateResolved {
		return round.Winner{}, apperrors.WithMetadata(apperrors.CodeDrawRequestResolved, "draw request was already resolved", map[string]string{
			"RequestID": requestID,
		})
	}

	winner, err := c.fulfiller.FulfillRandomValue(ctx, requestID, randomValue)
	if err != nil {
		return round.Winner{}, err
	}

	c.mu.Lock()
	c.requests[requestID] = stateResolved
	c.mu.Unlock()
	return winner, nil
}

func (c *Coordinator) fulfillAfter(requestID string, params round.RequestParams) {
	defer c.wg.Done()

	if params.FulfillmentDelay > 0 {
		timer := time.NewTimer(params.FulfillmentDelay)
		defer timer.Stop()
		select {
		case <-c.ctx.Done():
			return
		case <-timer.C:
		}
	}

	value, err := c.drawValue()
	if err != nil {
		log.Printf("vrf: draw value for request %s: %v", requestID, err)
		return
	}

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		_, err := c.Fulfill(c.ctx, requestID, value)
		if err == nil {
			return
		}
		if !apperrors.IsCode(err, apperrors.CodePoolTransferFailed) {
			log.Printf("vrf: fulfill request %s: %v", requestID, err)
			return
		}
		log.Printf("vrf: fulfill request %s attempt %d: %v", requestID, attempt, err)
		if attempt == c.maxAttempts {
			return
		}
		select {
		case <-c.ctx.Done():
			return
		case <-time.After(c.retryBackoff):
		}
	}
}

func cryptoDrawValue() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random bytes: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
