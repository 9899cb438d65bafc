// Package raffle exposes the raffle.v1 gRPC service.
package raffle

import (
	"context"
	"errors"
	"strings"

	rafflev1 "github.com/louisbranch/raffle/api/gen/go/raffle/v1"
	apperrors "github.com/louisbranch/raffle/internal/errors"
	"github.com/louisbranch/raffle/internal/services/raffle/domain/round"
	"github.com/louisbranch/raffle/internal/services/raffle/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AccountReader reads participant account balances from the pool ledger.
type AccountReader interface {
	AccountBalance(ctx context.Context, participantID string) (uint64, error)
}

// Service exposes raffle.v1 gRPC operations over the round machine.
type Service struct {
	rafflev1.UnimplementedRaffleServiceServer
	machine  *round.Machine
	accounts AccountReader
}

// NewService creates a raffle service backed by the round machine and the
// participant account ledger.
func NewService(machine *round.Machine, accounts AccountReader) *Service {
	return &Service{
		machine:  machine,
		accounts: accounts,
	}
}

// EnterRaffle admits a participant into the open round for a stake.
func (s *Service) EnterRaffle(ctx context.Context, in *rafflev1.EnterRaffleRequest) (*rafflev1.EnterRaffleResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "enter raffle request is required")
	}
	if s == nil || s.machine == nil {
		return nil, status.Error(codes.Internal, "round machine is not configured")
	}

	receipt, err := s.machine.Enter(ctx, in.GetParticipantId(), in.GetStake())
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &rafflev1.EnterRaffleResponse{
		Participants:  uint32(receipt.Participants),
		PooledBalance: receipt.PooledBalance,
	}, nil
}

// CheckUpkeep reports whether a draw can be triggered right now.
func (s *Service) CheckUpkeep(ctx context.Context, in *rafflev1.CheckUpkeepRequest) (*rafflev1.CheckUpkeepResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "check upkeep request is required")
	}
	if s == nil || s.machine == nil {
		return nil, status.Error(codes.Internal, "round machine is not configured")
	}

	upkeep, err := s.machine.CheckUpkeep(ctx)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return upkeepStatusToProto(upkeep), nil
}

// PerformUpkeep triggers a draw when the round is eligible.
func (s *Service) PerformUpkeep(ctx context.Context, in *rafflev1.PerformUpkeepRequest) (*rafflev1.PerformUpkeepResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "perform upkeep request is required")
	}
	if s == nil || s.machine == nil {
		return nil, status.Error(codes.Internal, "round machine is not configured")
	}

	requestID, err := s.machine.PerformUpkeep(ctx)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &rafflev1.PerformUpkeepResponse{RequestId: requestID}, nil
}

// GetRound returns the current round status and the last winner.
func (s *Service) GetRound(ctx context.Context, in *rafflev1.GetRoundRequest) (*rafflev1.GetRoundResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get round request is required")
	}
	if s == nil || s.machine == nil {
		return nil, status.Error(codes.Internal, "round machine is not configured")
	}

	current, err := s.machine.Status(ctx)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return roundStatusToProto(current), nil
}

// GetBalance returns a participant's credited winnings.
func (s *Service) GetBalance(ctx context.Context, in *rafflev1.GetBalanceRequest) (*rafflev1.GetBalanceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get balance request is required")
	}
	if s == nil || s.accounts == nil {
		return nil, status.Error(codes.Internal, "account ledger is not configured")
	}
	participantID := strings.TrimSpace(in.GetParticipantId())
	if participantID == "" {
		return nil, status.Error(codes.InvalidArgument, "participant id is required")
	}

	balance, err := s.accounts.AccountBalance(ctx, participantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// A participant with no winnings yet simply has a zero balance.
			return &rafflev1.GetBalanceResponse{Balance: 0}, nil
		}
		return nil, status.Errorf(codes.Internal, "read account balance: %v", err)
	}
	return &rafflev1.GetBalanceResponse{Balance: balance}, nil
}

// handleDomainError converts domain errors to gRPC status using the
// structured error system. For domain errors (*apperrors.Error), it returns a
// properly formatted gRPC status with ErrorInfo and LocalizedMessage details.
// For non-domain errors, it falls back to an internal error.
func handleDomainError(err error) error {
	return apperrors.HandleError(err, apperrors.DefaultLocale)
}
