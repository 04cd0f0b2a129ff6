package raffle

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

// PerformUpkeep moves the raffle to CALCULATING and requests randomness.
// Eligibility is evaluated again here; performData is not interpreted.
func (r *Raffle) PerformUpkeep(ctx context.Context, performData []byte) (models.RequestHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if !upkeepNeeded(r.state, now) {
		return models.RequestHandle{}, &UpkeepNotNeededError{
			Balance: new(big.Int).Set(r.state.PoolBalance),
			Players: len(r.state.Players),
			Phase:   r.state.Phase,
		}
	}

	next := r.state.Clone()
	next.Phase = models.PhaseCalculating

	handle, err := r.oracle.RequestRandomWords(ctx, r.cfg.Oracle)
	if err != nil {
		return models.RequestHandle{}, fmt.Errorf("request randomness: %w", err)
	}
	if handle.IssuedAt.IsZero() {
		handle.IssuedAt = now
	}
	next.PendingRequest = &handle

	if err := r.commit(ctx, next, nil); err != nil {
		return models.RequestHandle{}, fmt.Errorf("persist upkeep: %w", err)
	}

	r.publish(ctx, UpkeepTriggered{
		RequestID: handle.ID,
		Round:     next.Round,
		Players:   len(next.Players),
		Pool:      new(big.Int).Set(next.PoolBalance),
		At:        next.UpdatedAt,
	})
	return handle, nil
}
