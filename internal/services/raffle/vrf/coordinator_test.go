package vrf

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "github.com/louisbranch/raffle/internal/errors"
	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
)

type stubFulfiller struct {
	mu     sync.Mutex
	calls  []fulfillCall
	errs   []error
	winner round.Winner
}

type fulfillCall struct {
	requestID string
	value     uint64
}

func (f *stubFulfiller) FulfillRandomValue(_ context.Context, requestID string, value uint64) (round.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fulfillCall{requestID: requestID, value: value})
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return round.Winner{}, err
		}
	}
	return f.winner, nil
}

func (f *stubFulfiller) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestRequestDrawFulfillsAsynchronously(t *testing.T) {
	fulfiller := &stubFulfiller{winner: round.Winner{ParticipantID: "alice", Amount: 100}}
	coordinator, err := New(fulfiller, WithDrawValue(func() (uint64, error) { return 42, nil }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer coordinator.Close()

	requestID, err := coordinator.RequestDraw(context.Background(), round.RequestParams{FulfillmentDelay: time.Millisecond})
	if err != nil {
		t.Fatalf("RequestDraw: %v", err)
	}
	if requestID == "" {
		t.Fatal("expected a request id")
	}

	waitFor(t, time.Second, func() bool { return fulfiller.callCount() == 1 })
	if fulfiller.calls[0].requestID != requestID || fulfiller.calls[0].value != 42 {
		t.Fatalf("fulfill call = %+v", fulfiller.calls[0])
	}
	if coordinator.Outstanding() != 0 {
		t.Fatalf("outstanding = %d after fulfillment", coordinator.Outstanding())
	}
}

func TestFulfillRejectsUnknownRequest(t *testing.T) {
	coordinator, err := New(&stubFulfiller{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer coordinator.Close()

	_, err = coordinator.Fulfill(context.Background(), "nope", 1)
	if !apperrors.IsCode(err, apperrors.CodeDrawRequestUnknown) {
		t.Fatalf("expected unknown request, got %v", err)
	}
}

func TestFulfillRejectsResolvedRequest(t *testing.T) {
	fulfiller := &stubFulfiller{}
	coordinator, err := New(fulfiller, WithDrawValue(func() (uint64, error) { return 7, nil }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer coordinator.Close()

	requestID, err := coordinator.RequestDraw(context.Background(), round.RequestParams{})
	if err != nil {
		t.Fatalf("RequestDraw: %v", err)
	}
	waitFor(t, time.Second, func() bool { return coordinator.Outstanding() == 0 })

	_, err = coordinator.Fulfill(context.Background(), requestID, 7)
	if !apperrors.IsCode(err, apperrors.CodeDrawRequestResolved) {
		t.Fatalf("expected resolved request, got %v", err)
	}
	if fulfiller.callCount() != 1 {
		t.Fatalf("fulfiller calls = %d, want 1", fulfiller.callCount())
	}
}

func TestFulfillRetriesAfterTransferFailure(t *testing.T) {
	fulfiller := &stubFulfiller{
		errs: []error{
			apperrors.New(apperrors.CodePoolTransferFailed, "payout failed"),
			nil,
		},
	}
	coordinator, err := New(fulfiller,
		WithDrawValue(func() (uint64, error) { return 3, nil }),
		WithRetry(time.Millisecond, 3),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer coordinator.Close()

	requestID, err := coordinator.RequestDraw(context.Background(), round.RequestParams{})
	if err != nil {
		t.Fatalf("RequestDraw: %v", err)
	}

	waitFor(t, time.Second, func() bool { return coordinator.Outstanding() == 0 })
	if fulfiller.callCount() != 2 {
		t.Fatalf("fulfiller calls = %d, want 2", fulfiller.callCount())
	}
	fulfiller.mu.Lock()
	defer fulfiller.mu.Unlock()
	for _, call := range fulfiller.calls {
		if call.requestID != requestID || call.value != 3 {
			t.Fatalf("retry changed the fulfillment: %+v", call)
		}
	}
}

func TestRequestDrawKeepsRequestOutstandingAfterExhaustedRetries(t *testing.T) {
	fulfiller := &stubFulfiller{
		errs: []error{
			apperrors.New(apperrors.CodePoolTransferFailed, "payout failed"),
			apperrors.New(apperrors.CodePoolTransferFailed, "payout failed"),
		},
	}
	coordinator, err := New(fulfiller,
		WithDrawValue(func() (uint64, error) { return 9, nil }),
		WithRetry(time.Millisecond, 2),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer coordinator.Close()

	requestID, err := coordinator.RequestDraw(context.Background(), round.RequestParams{})
	if err != nil {
		t.Fatalf("RequestDraw: %v", err)
	}

	waitFor(t, time.Second, func() bool { return fulfiller.callCount() == 2 })
	if coordinator.Outstanding() != 1 {
		t.Fatalf("outstanding = %d, want 1", coordinator.Outstanding())
	}

	// A manual fulfillment of the still-outstanding request succeeds.
	if _, err := coordinator.Fulfill(context.Background(), requestID, 9); err != nil {
		t.Fatalf("manual Fulfill: %v", err)
	}
	if coordinator.Outstanding() != 0 {
		t.Fatalf("outstanding = %d after manual fulfillment", coordinator.Outstanding())
	}
}

func TestCloseStopsScheduledFulfillments(t *testing.T) {
	fulfiller := &stubFulfiller{}
	coordinator, err := New(fulfiller, WithDrawValue(func() (uint64, error) { return 1, nil }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := coordinator.RequestDraw(context.Background(), round.RequestParams{FulfillmentDelay: time.Hour}); err != nil {
		t.Fatalf("RequestDraw: %v", err)
	}
	coordinator.Close()

	if fulfiller.callCount() != 0 {
		t.Fatalf("fulfiller calls = %d after Close", fulfiller.callCount())
	}
}
