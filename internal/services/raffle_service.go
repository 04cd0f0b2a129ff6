package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/metrics"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure RaffleServiceImpl implements RaffleService
var _ RaffleService = (*RaffleServiceImpl)(nil)

// RaffleServiceImpl fronts the raffle state machine with logging, metrics and history queries
type RaffleServiceImpl struct {
	raffle      *raffle.Raffle
	winnerRepo  repositories.WinnerRepository
	eventRepo   repositories.EventRepository
	accountRepo repositories.AccountRepository
	metrics     *metrics.Metrics
}

// NewRaffleService creates a new RaffleServiceImpl
func NewRaffleService(
	r *raffle.Raffle,
	winnerRepo repositories.WinnerRepository,
	eventRepo repositories.EventRepository,
	accountRepo repositories.AccountRepository,
	m *metrics.Metrics,
) *RaffleServiceImpl {
	s := &RaffleServiceImpl{
		raffle:      r,
		winnerRepo:  winnerRepo,
		eventRepo:   eventRepo,
		accountRepo: accountRepo,
		metrics:     m,
	}
	s.observe()
	return s
}

func (s *RaffleServiceImpl) observe() {
	s.metrics.ObserveState(s.raffle.Snapshot())
}

func (s *RaffleServiceImpl) Status(ctx context.Context) *models.RaffleStatus {
	state := s.raffle.Snapshot()
	ready, _ := s.raffle.CheckUpkeep(ctx, nil)

	status := &models.RaffleStatus{
		Phase:           state.Phase,
		EntryFee:        state.EntryFee.String(),
		IntervalSeconds: int64(state.Interval.Seconds()),
		LastTriggerTime: state.LastTriggerTime,
		NumberOfPlayers: len(state.Players),
		PoolBalance:     state.PoolBalance.String(),
		PendingRequest:  state.PendingRequest,
		Round:           state.Round,
		UpkeepNeeded:    ready,
		Oracle:          s.raffle.OracleConfig(),
		UpdatedAt:       state.UpdatedAt,
	}
	if state.RecentWinner != nil {
		status.RecentWinner = state.RecentWinner.Hex()
	}
	return status
}

func (s *RaffleServiceImpl) Players(ctx context.Context) []common.Address {
	return s.raffle.Snapshot().Players
}

func (s *RaffleServiceImpl) Player(ctx context.Context, index int) (common.Address, error) {
	return s.raffle.Player(index)
}

func (s *RaffleServiceImpl) Enter(ctx context.Context, participant common.Address, amount *big.Int) error {
	if err := s.raffle.Enter(ctx, participant, amount); err != nil {
		slog.Warn("Entry rejected", "participant", utils.MaskAddress(participant), "amount", amount, "error", err)
		return err
	}
	s.observe()
	slog.Info("Entry recorded", "participant", utils.MaskAddress(participant), "amount", amount, "players", s.raffle.NumberOfPlayers())
	return nil
}

func (s *RaffleServiceImpl) CheckUpkeep(ctx context.Context, checkData []byte) (bool, []byte) {
	return s.raffle.CheckUpkeep(ctx, checkData)
}

func (s *RaffleServiceImpl) PerformUpkeep(ctx context.Context, performData []byte) (models.RequestHandle, error) {
	handle, err := s.raffle.PerformUpkeep(ctx, performData)
	if err != nil {
		if errors.Is(err, raffle.ErrUpkeepNotNeeded) {
			slog.Debug("Upkeep not needed", "error", err)
		} else {
			slog.Error("PerformUpkeep failed", "error", err)
		}
		return models.RequestHandle{}, err
	}
	s.observe()
	slog.Info("Randomness requested", "requestId", handle.ID, "round", s.raffle.Round(), "players", s.raffle.NumberOfPlayers())
	return handle, nil
}

func (s *RaffleServiceImpl) FulfillRandomness(ctx context.Context, requestID string, randomWords []*big.Int) (common.Address, error) {
	if len(randomWords) == 0 {
		return common.Address{}, fmt.Errorf("%w: no random words delivered", raffle.ErrInvalidRandomness)
	}

	winner, err := s.raffle.FulfillRandomness(ctx, requestID, randomWords[0])
	if err != nil {
		switch {
		case errors.Is(err, raffle.ErrTransferFailed):
			s.metrics.PayoutFailed()
			slog.Error("FulfillRandomness: payout failed, round kept for retry", "requestId", requestID, "error", err)
		case errors.Is(err, raffle.ErrUnknownRequest):
			slog.Warn("FulfillRandomness: unknown request", "requestId", requestID, "error", err)
		default:
			slog.Error("FulfillRandomness failed", "requestId", requestID, "error", err)
		}
		return common.Address{}, err
	}
	s.observe()
	slog.Info("Winner picked", "requestId", requestID, "winner", utils.MaskAddress(winner))
	return winner, nil
}

func (s *RaffleServiceImpl) ReissueRequest(ctx context.Context) (models.RequestHandle, error) {
	handle, err := s.raffle.ReissueRequest(ctx)
	if err != nil {
		slog.Warn("ReissueRequest rejected", "error", err)
		return models.RequestHandle{}, err
	}
	slog.Info("Randomness request reissued", "requestId", handle.ID)
	return handle, nil
}

func (s *RaffleServiceImpl) Winners(ctx context.Context, page, limit int) ([]*models.Winner, int64, error) {
	winners, err := s.winnerRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list winners: %w", err)
	}
	total, err := s.winnerRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count winners: %w", err)
	}
	return winners, total, nil
}

func (s *RaffleServiceImpl) Events(ctx context.Context, page, limit int, eventType models.RaffleEventType) ([]*models.RaffleEvent, error) {
	events, err := s.eventRepo.FindAll(ctx, page, limit, eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *RaffleServiceImpl) Account(ctx context.Context, address common.Address) (*models.Account, error) {
	account, err := s.accountRepo.FindByAddress(ctx, address.Hex())
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.Account{Address: address.Hex(), Balance: "0"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}
