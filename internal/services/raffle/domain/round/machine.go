package round

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/raffle/internal/errors"
)

// Machine serializes all round operations behind a single lock.
//
// Admissions, upkeep checks, draw triggers, and fulfillments never interleave,
// so the registry observed when a draw is issued is exactly the registry the
// fulfillment selects from.
type Machine struct {
	cfg       Config
	pool      Pool
	requester DrawRequester
	events    Events
	now       func() time.Time

	mu               sync.Mutex
	state            State
	registry         []string
	lastResetAt      time.Time
	lastWinner       *Winner
	pendingRequestID string
}

// Option configures optional machine collaborators.
type Option func(*Machine)

// WithEvents wires a lifecycle event sink.
func WithEvents(events Events) Option {
	return func(m *Machine) {
		if events != nil {
			m.events = events
		}
	}
}

// WithClock overrides the machine clock.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMachine validates the configuration and returns a round machine in the
// OPEN state with an empty registry.
func NewMachine(cfg Config, pool Pool, requester DrawRequester, opts ...Option) (*Machine, error) {
	if cfg.StakeAmount == 0 {
		return nil, fmt.Errorf("round: stake amount must be positive")
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("round: interval must not be negative")
	}
	if pool == nil {
		return nil, fmt.Errorf("round: pool is required")
	}
	if requester == nil {
		return nil, fmt.Errorf("round: draw requester is required")
	}

	m := &Machine{
		cfg:       cfg,
		pool:      pool,
		requester: requester,
		events:    nopEvents{},
		now:       time.Now,
		state:     StateOpen,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastResetAt = m.now().UTC()
	return m, nil
}

// Enter admits a participant into the round for the given stake.
//
// The deposit is the only fallible step and happens before the participant is
// appended to the registry, so on any error the registry and the pool agree:
// either both admitted the entry or neither did. Duplicate entries are
// allowed and each occupies its own registry slot.
func (m *Machine) Enter(ctx context.Context, participantID string, stake uint64) (EntryReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return EntryReceipt{}, apperrors.New(apperrors.CodeRaffleParticipantRequired, "participant id is required")
	}
	if stake < m.cfg.StakeAmount {
		return EntryReceipt{}, apperrors.WithMetadata(apperrors.CodeRaffleInsufficientStake, "stake below minimum entry stake", map[string]string{
			"Stake":   strconv.FormatUint(stake, 10),
			"Minimum": strconv.FormatUint(m.cfg.StakeAmount, 10),
		})
	}
	if m.state != StateOpen {
		return EntryReceipt{}, apperrors.WithMetadata(apperrors.CodeRaffleRoundNotOpen, "round is not accepting entries", map[string]string{
			"State": string(m.state),
		})
	}

	balance, err := m.pool.Deposit(ctx, participantID, stake)
	if err != nil {
		return EntryReceipt{}, fmt.Errorf("deposit stake: %w", err)
	}
	m.registry = append(m.registry, participantID)

	m.events.RaffleEntered(ctx, participantID, stake)
	return EntryReceipt{
		Participants:  len(m.registry),
		PooledBalance: balance,
	}, nil
}

// CheckUpkeep reports whether a draw can be triggered right now.
//
// The round is eligible when the interval has elapsed (an elapsed time of
// exactly the interval counts), the round is OPEN, the pooled balance is
// positive, and at least one participant is registered.
func (m *Machine) CheckUpkeep(ctx context.Context) (UpkeepStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upkeepStatus(ctx)
}

func (m *Machine) upkeepStatus(ctx context.Context) (UpkeepStatus, error) {
	balance, err := m.pool.Balance(ctx)
	if err != nil {
		return UpkeepStatus{}, fmt.Errorf("read pooled balance: %w", err)
	}

	elapsed := m.now().UTC().Sub(m.lastResetAt)
	return UpkeepStatus{
		Eligible:      elapsed >= m.cfg.Interval && m.state == StateOpen && balance > 0 && len(m.registry) > 0,
		State:         m.state,
		Participants:  len(m.registry),
		PooledBalance: balance,
		LastResetAt:   m.lastResetAt,
	}, nil
}

// PerformUpkeep triggers a draw when the round is eligible.
//
// The eligibility predicate is re-evaluated under the lock, so a caller that
// raced a successful upkeep gets RAFFLE_UPKEEP_NOT_NEEDED with the current
// state as metadata. The round transitions to CALCULATING before the
// randomness request is issued, closing the admission window first; if the
// request itself fails the round reverts to OPEN.
func (m *Machine) PerformUpkeep(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status, err := m.upkeepStatus(ctx)
	if err != nil {
		return "", err
	}
	if !status.Eligible {
		return "", apperrors.WithMetadata(apperrors.CodeRaffleUpkeepNotNeeded, "upkeep is not needed", map[string]string{
			"State":        string(status.State),
			"Participants": strconv.Itoa(status.Participants),
			"Balance":      strconv.FormatUint(status.PooledBalance, 10),
		})
	}

	m.state = StateCalculating
	requestID, err := m.requester.RequestDraw(ctx, m.cfg.Request)
	if err != nil {
		m.state = StateOpen
		return "", fmt.Errorf("request draw: %w", err)
	}
	m.pendingRequestID = requestID

	m.events.DrawRequested(ctx, requestID)
	return requestID, nil
}

// FulfillRandomValue resolves the pending draw with the supplied random value.
//
// The winner is the registry slot at randomValue modulo the registry length.
// The payout, winner record, registry reset, and reopening happen as one
// step: if the payout fails, no state changes and the draw stays pending so
// the same fulfillment can be retried.
func (m *Machine) FulfillRandomValue(ctx context.Context, requestID string, randomValue uint64) (Winner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateCalculating || m.pendingRequestID == "" {
		return Winner{}, apperrors.New(apperrors.CodeRaffleNoPendingDraw, "no draw is pending")
	}
	if requestID != m.pendingRequestID {
		return Winner{}, apperrors.WithMetadata(apperrors.CodeDrawRequestUnknown, "fulfillment does not match the pending draw", map[string]string{
			"RequestID": requestID,
		})
	}

	winnerID := m.registry[randomValue%uint64(len(m.registry))]

	amount, err := m.pool.PayoutAll(ctx, winnerID)
	if err != nil {
		return Winner{}, apperrors.Wrap(apperrors.CodePoolTransferFailed, "winner payout failed", err).
			WithMeta(map[string]string{"Participant": winnerID})
	}
	if amount == 0 {
		// CALCULATING implies the balance was positive at draw time, so a
		// zero payout means the pool was drained out of band.
		return Winner{}, apperrors.New(apperrors.CodePoolEmpty, "pooled balance is empty")
	}

	winner := Winner{
		ParticipantID: winnerID,
		Amount:        amount,
		RequestID:     requestID,
		PickedAt:      m.now().UTC(),
	}
	m.lastWinner = &winner
	m.registry = nil
	m.pendingRequestID = ""
	m.state = StateOpen
	m.lastResetAt = winner.PickedAt

	m.events.WinnerPicked(ctx, winner)
	return winner, nil
}

// Status returns the observable round state for read-only callers.
func (m *Machine) Status(ctx context.Context) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance, err := m.pool.Balance(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read pooled balance: %w", err)
	}

	status := Status{
		State:         m.state,
		Participants:  len(m.registry),
		PooledBalance: balance,
		LastResetAt:   m.lastResetAt,
	}
	if m.lastWinner != nil {
		winner := *m.lastWinner
		status.LastWinner = &winner
	}
	return status, nil
}

// Participants returns a copy of the current registry in admission order.
func (m *Machine) Participants() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.registry))
	copy(out, m.registry)
	return out
}
