package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeRaffleParticipantRequired = "RAFFLE_PARTICIPANT_REQUIRED"
	CodeRaffleInsufficientStake   = "RAFFLE_INSUFFICIENT_STAKE"
	CodeRaffleRoundNotOpen        = "RAFFLE_ROUND_NOT_OPEN"
	CodeRaffleUpkeepNotNeeded     = "RAFFLE_UPKEEP_NOT_NEEDED"
	CodeRaffleNoPendingDraw       = "RAFFLE_NO_PENDING_DRAW"
	CodeDrawRequestUnknown        = "DRAW_REQUEST_UNKNOWN"
	CodeDrawRequestResolved       = "DRAW_REQUEST_RESOLVED"
	CodePoolTransferFailed        = "POOL_TRANSFER_FAILED"
	CodePoolEmpty                 = "POOL_EMPTY"
	CodeNotFound                  = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Raffle errors
		CodeRaffleParticipantRequired: "Participant ID is required",
		CodeRaffleInsufficientStake:   "Stake {{.Stake}} is below the minimum entry stake {{.Minimum}}",
		CodeRaffleRoundNotOpen:        "The raffle round is {{.State}} and not accepting entries",
		CodeRaffleUpkeepNotNeeded:     "Upkeep is not needed: state {{.State}}, {{.Participants}} participants, pooled balance {{.Balance}}",
		CodeRaffleNoPendingDraw:       "No draw is pending for this round",

		// Randomness errors
		CodeDrawRequestUnknown:  "Draw request {{.RequestID}} is not outstanding",
		CodeDrawRequestResolved: "Draw request {{.RequestID}} was already resolved",

		// Pool errors
		CodePoolTransferFailed: "Payout to {{.Participant}} failed",
		CodePoolEmpty:          "The prize pool is empty",

		// Storage errors
		CodeNotFound: "The requested record was not found",
	},
}
