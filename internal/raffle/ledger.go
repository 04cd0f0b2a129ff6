package raffle

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
)

// Enter records one entry for participant and adds amount to the pool.
// Any amount above the entry fee stays in the pool.
func (r *Raffle) Enter(ctx context.Context, participant common.Address, amount *big.Int) error {
	if amount == nil {
		amount = new(big.Int)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if amount.Cmp(r.state.EntryFee) < 0 {
		return fmt.Errorf("%w: sent %s, entry fee is %s", ErrInsufficientFee, amount, r.state.EntryFee)
	}
	if r.state.Phase != models.PhaseOpen {
		return fmt.Errorf("%w: phase is %s", ErrNotOpen, r.state.Phase)
	}

	next := r.state.Clone()
	next.Players = append(next.Players, participant)
	next.PoolBalance.Add(next.PoolBalance, amount)
	if err := r.commit(ctx, next, nil); err != nil {
		return fmt.Errorf("persist entry: %w", err)
	}

	r.publish(ctx, EntryRecorded{
		Participant: participant,
		Amount:      new(big.Int).Set(amount),
		Round:       next.Round,
		At:          next.UpdatedAt,
	})
	return nil
}
