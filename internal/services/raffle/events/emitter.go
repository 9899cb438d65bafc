// Package events journals raffle lifecycle notifications.
package events

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
	"github.com/louisbranch/raffle/internal/services/raffle/storage"
)

// Emitter records round lifecycle events in the raffle event journal.
// Journaling is best effort: failures are logged and never surface into
// the round operation that produced the event.
type Emitter struct {
	store storage.EventStore
	clock func() time.Time
}

// NewEmitter creates a new raffle event emitter.
func NewEmitter(store storage.EventStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// RaffleEntered records a participant admission.
func (e *Emitter) RaffleEntered(ctx context.Context, participantID string, stake uint64) {
	e.emit(ctx, storage.Event{
		Type:          storage.EventRaffleEntered,
		ParticipantID: participantID,
		Amount:        stake,
	})
}

// DrawRequested records an issued randomness request.
func (e *Emitter) DrawRequested(ctx context.Context, requestID string) {
	e.emit(ctx, storage.Event{
		Type:      storage.EventDrawRequested,
		RequestID: requestID,
	})
}

// WinnerPicked records a resolved round.
func (e *Emitter) WinnerPicked(ctx context.Context, winner round.Winner) {
	e.emit(ctx, storage.Event{
		Type:          storage.EventWinnerPicked,
		ParticipantID: winner.ParticipantID,
		Amount:        winner.Amount,
		RequestID:     winner.RequestID,
	})
}

func (e *Emitter) emit(ctx context.Context, event storage.Event) {
	if e == nil || e.store == nil {
		return
	}
	if event.CreatedAt.IsZero() {
		if e.clock == nil {
			event.CreatedAt = time.Now().UTC()
		} else {
			event.CreatedAt = e.clock().UTC()
		}
	}
	if err := e.store.AppendEvent(ctx, event); err != nil {
		log.Printf("events: append %s: %v", event.Type, err)
	}
}
