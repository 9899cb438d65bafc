package raffle

import (
	rafflev1 "github.com/louisbranch/raffle/api/gen/go/raffle/v1"
	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func roundStateToProto(state round.State) rafflev1.RoundState {
	switch state {
	case round.StateOpen:
		return rafflev1.RoundState_ROUND_STATE_OPEN
	case round.StateCalculating:
		return rafflev1.RoundState_ROUND_STATE_CALCULATING
	default:
		return rafflev1.RoundState_ROUND_STATE_UNSPECIFIED
	}
}

func upkeepStatusToProto(status round.UpkeepStatus) *rafflev1.CheckUpkeepResponse {
	return &rafflev1.CheckUpkeepResponse{
		Eligible:      status.Eligible,
		RoundState:    roundStateToProto(status.State),
		Participants:  uint32(status.Participants),
		PooledBalance: status.PooledBalance,
		LastResetAt:   timestamppb.New(status.LastResetAt),
	}
}

func roundStatusToProto(status round.Status) *rafflev1.GetRoundResponse {
	out := &rafflev1.GetRoundResponse{
		RoundState:    roundStateToProto(status.State),
		Participants:  uint32(status.Participants),
		PooledBalance: status.PooledBalance,
		LastResetAt:   timestamppb.New(status.LastResetAt),
	}
	if status.LastWinner != nil {
		out.LastWinner = &rafflev1.Winner{
			ParticipantId: status.LastWinner.ParticipantID,
			Amount:        status.LastWinner.Amount,
			PickedAt:      timestamppb.New(status.LastWinner.PickedAt),
		}
	}
	return out
}
