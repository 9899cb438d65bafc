package round

import "time"

// State is the lifecycle state of the current round.
type State string

const (
	// StateOpen admits entries and permits a draw once the round is eligible.
	StateOpen State = "OPEN"
	// StateCalculating blocks admissions while a draw awaits fulfillment.
	StateCalculating State = "CALCULATING"
)

// RequestParams carries opaque provider parameters for a randomness request.
type RequestParams struct {
	// KeysetLabel names the provider keyset used to attribute the draw.
	KeysetLabel string
	// FulfillmentDelay is how long the provider waits before fulfilling.
	FulfillmentDelay time.Duration
}

// Config is the immutable round configuration.
type Config struct {
	// StakeAmount is the minimum stake required to enter. Must be positive.
	StakeAmount uint64
	// Interval is the minimum round duration before a draw may be triggered.
	Interval time.Duration
	// Request holds the randomness provider parameters for each draw.
	Request RequestParams
}

// Winner records the outcome of a resolved round.
type Winner struct {
	ParticipantID string
	Amount        uint64
	RequestID     string
	PickedAt      time.Time
}

// EntryReceipt summarizes the round right after an admission.
type EntryReceipt struct {
	Participants  int
	PooledBalance uint64
}

// UpkeepStatus is the full eligibility diagnostic returned by CheckUpkeep.
type UpkeepStatus struct {
	Eligible      bool
	State         State
	Participants  int
	PooledBalance uint64
	LastResetAt   time.Time
}

// Status is the observable round state returned by Machine.Status.
type Status struct {
	State         State
	Participants  int
	PooledBalance uint64
	LastResetAt   time.Time
	LastWinner    *Winner
}
