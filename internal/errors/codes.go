// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Raffle errors
	CodeRaffleParticipantRequired Code = "RAFFLE_PARTICIPANT_REQUIRED"
	CodeRaffleInsufficientStake   Code = "RAFFLE_INSUFFICIENT_STAKE"
	CodeRaffleRoundNotOpen        Code = "RAFFLE_ROUND_NOT_OPEN"
	CodeRaffleUpkeepNotNeeded     Code = "RAFFLE_UPKEEP_NOT_NEEDED"
	CodeRaffleNoPendingDraw       Code = "RAFFLE_NO_PENDING_DRAW"

	// Randomness errors
	CodeDrawRequestUnknown  Code = "DRAW_REQUEST_UNKNOWN"
	CodeDrawRequestResolved Code = "DRAW_REQUEST_RESOLVED"

	// Pool errors
	CodePoolTransferFailed Code = "POOL_TRANSFER_FAILED"
	CodePoolEmpty          Code = "POOL_EMPTY"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRaffleParticipantRequired,
		CodeRaffleInsufficientStake:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeRaffleRoundNotOpen,
		CodeRaffleUpkeepNotNeeded,
		CodeRaffleNoPendingDraw,
		CodeDrawRequestUnknown,
		CodeDrawRequestResolved,
		CodePoolEmpty:
		return codes.FailedPrecondition

	// Aborted - retryable resource failure
	case CodePoolTransferFailed:
		return codes.Aborted

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
