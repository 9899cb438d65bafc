package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
	"github.com/louisbranch/raffle/internal/services/raffle/storage"
)

type fakeEventStore struct {
	events []storage.Event
	err    error
}

func (s *fakeEventStore) AppendEvent(_ context.Context, event storage.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *fakeEventStore) ListEvents(context.Context, int) ([]storage.Event, error) {
	return s.events, nil
}

func TestEmitterRecordsLifecycleEvents(t *testing.T) {
	store := &fakeEventStore{}
	emitter := NewEmitter(store)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	emitter.clock = func() time.Time { return now }
	ctx := context.Background()

	emitter.RaffleEntered(ctx, "alice", 100)
	emitter.DrawRequested(ctx, "req-1")
	emitter.WinnerPicked(ctx, round.Winner{ParticipantID: "alice", Amount: 100, RequestID: "req-1", PickedAt: now})

	if len(store.events) != 3 {
		t.Fatalf("events = %d, want 3", len(store.events))
	}
	if store.events[0].Type != storage.EventRaffleEntered || store.events[0].ParticipantID != "alice" || store.events[0].Amount != 100 {
		t.Fatalf("entered event = %+v", store.events[0])
	}
	if store.events[1].Type != storage.EventDrawRequested || store.events[1].RequestID != "req-1" {
		t.Fatalf("requested event = %+v", store.events[1])
	}
	if store.events[2].Type != storage.EventWinnerPicked || store.events[2].Amount != 100 || store.events[2].RequestID != "req-1" {
		t.Fatalf("winner event = %+v", store.events[2])
	}
	for _, event := range store.events {
		if !event.CreatedAt.Equal(now) {
			t.Fatalf("created_at = %v, want %v", event.CreatedAt, now)
		}
	}
}

func TestEmitterIsNilSafe(t *testing.T) {
	ctx := context.Background()

	var emitter *Emitter
	emitter.RaffleEntered(ctx, "alice", 100)

	NewEmitter(nil).DrawRequested(ctx, "req-1")
}

func TestEmitterSwallowsStoreErrors(t *testing.T) {
	store := &fakeEventStore{err: errors.New("journal unavailable")}
	emitter := NewEmitter(store)

	emitter.WinnerPicked(context.Background(), round.Winner{ParticipantID: "alice"})
	if len(store.events) != 0 {
		t.Fatalf("events = %d, want 0", len(store.events))
	}
}
