// Package storage defines persistence contracts for raffle service state.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Event types recorded in the raffle event journal.
const (
	EventRaffleEntered = "raffle.entered"
	EventDrawRequested = "raffle.draw_requested"
	EventWinnerPicked  = "raffle.winner_picked"
)

// Event stores one raffle lifecycle notification.
type Event struct {
	ID            int64
	Type          string
	ParticipantID string
	Amount        uint64
	RequestID     string
	CreatedAt     time.Time
}

// PoolStore persists the pooled round balance and the participant ledger.
type PoolStore interface {
	// Deposit moves a participant's stake into the pooled balance and
	// returns the updated balance in the same operation.
	Deposit(ctx context.Context, participantID string, amount uint64) (uint64, error)
	// Balance returns the current pooled balance.
	Balance(ctx context.Context) (uint64, error)
	// PayoutAll atomically zeroes the pooled balance and credits the full
	// amount to the participant's account, returning the amount paid.
	PayoutAll(ctx context.Context, participantID string) (uint64, error)
	// AccountBalance returns a participant's credited winnings.
	AccountBalance(ctx context.Context, participantID string) (uint64, error)
}

// EventStore persists the raffle event journal.
type EventStore interface {
	AppendEvent(ctx context.Context, event Event) error
	ListEvents(ctx context.Context, limit int) ([]Event, error)
}

// Store is the full raffle persistence surface.
type Store interface {
	PoolStore
	EventStore
	Close() error
}
