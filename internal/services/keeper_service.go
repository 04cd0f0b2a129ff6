package services

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"golang.org/x/exp/slog"
)

// UpkeepPerformer is the part of RaffleService the keeper drives
type UpkeepPerformer interface {
	CheckUpkeep(ctx context.Context, checkData []byte) (bool, []byte)
	PerformUpkeep(ctx context.Context, performData []byte) (models.RequestHandle, error)
}

// KeeperService polls upkeep eligibility and triggers the randomness request
type KeeperService struct {
	raffle       UpkeepPerformer
	pollInterval time.Duration
}

func NewKeeperService(r UpkeepPerformer, pollInterval time.Duration) *KeeperService {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	return &KeeperService{raffle: r, pollInterval: pollInterval}
}

// Run polls until ctx is cancelled
func (k *KeeperService) Run(ctx context.Context) {
	slog.Info("Keeper started", "pollInterval", k.pollInterval)
	ticker := time.NewTicker(k.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Keeper stopped")
			return
		case <-ticker.C:
			if _, err := k.Tick(ctx); err != nil {
				slog.Error("Keeper upkeep failed", "error", err)
			}
		}
	}
}

// Tick performs upkeep once if it is needed and reports whether it did.
// Losing a race to another trigger is not an error.
func (k *KeeperService) Tick(ctx context.Context) (bool, error) {
	ready, performData := k.raffle.CheckUpkeep(ctx, nil)
	if !ready {
		return false, nil
	}

	handle, err := k.raffle.PerformUpkeep(ctx, performData)
	if errors.Is(err, raffle.ErrUpkeepNotNeeded) {
		slog.Debug("Keeper lost upkeep race", "error", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	slog.Info("Keeper performed upkeep", "requestId", handle.ID)
	return true, nil
}
