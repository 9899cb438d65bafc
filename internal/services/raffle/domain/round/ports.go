package round

import "context"

// Pool holds the staked funds for the current round and the participant
// account ledger that winnings are credited to.
type Pool interface {
	// Deposit moves a participant's stake into the pooled balance and
	// returns the updated balance. Admission depends on this being the
	// only fallible step, so the deposit and the balance read must be one
	// operation.
	Deposit(ctx context.Context, participantID string, amount uint64) (uint64, error)
	// Balance returns the current pooled balance.
	Balance(ctx context.Context) (uint64, error)
	// PayoutAll atomically zeroes the pooled balance and credits the full
	// amount to the participant's account, returning the amount paid.
	PayoutAll(ctx context.Context, participantID string) (uint64, error)
}

// DrawRequester issues an asynchronous randomness request and returns the
// request ID used to correlate the eventual fulfillment.
type DrawRequester interface {
	RequestDraw(ctx context.Context, params RequestParams) (string, error)
}

// Events receives round lifecycle notifications. The machine calls them
// while holding its lock, so implementations should return quickly and
// treat delivery as best effort.
type Events interface {
	RaffleEntered(ctx context.Context, participantID string, stake uint64)
	DrawRequested(ctx context.Context, requestID string)
	WinnerPicked(ctx context.Context, winner Winner)
}

type nopEvents struct{}

func (nopEvents) RaffleEntered(context.Context, string, uint64) {}
func (nopEvents) DrawRequested(context.Context, string)         {}
func (nopEvents) WinnerPicked(context.Context, Winner)          {}
