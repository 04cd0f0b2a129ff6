package raffle

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
)

// FulfillRandomness consumes the oracle response for the pending request,
// draws the winner, pays out the pool and opens the next round. Winner
// selection, payout and reset are one unit: if the payout fails nothing changes.
func (r *Raffle) FulfillRandomness(ctx context.Context, requestID string, randomValue *big.Int) (common.Address, error) {
	if randomValue == nil || randomValue.Sign() < 0 {
		return common.Address{}, fmt.Errorf("%w: must be an unsigned integer", ErrInvalidRandomness)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state
	if s.Phase != models.PhaseCalculating || s.PendingRequest == nil {
		return common.Address{}, fmt.Errorf("%w: %q (no request pending)", ErrUnknownRequest, requestID)
	}
	if s.PendingRequest.ID != requestID {
		return common.Address{}, fmt.Errorf("%w: %q (pending %q)", ErrUnknownRequest, requestID, s.PendingRequest.ID)
	}
	if len(s.Players) == 0 {
		return common.Address{}, errors.New("pending request has no recorded players")
	}

	winner := pickWinner(s.Players, randomValue)
	prize := new(big.Int).Set(s.PoolBalance)
	players := len(s.Players)

	next := s.Clone()
	next.RecentWinner = &winner
	next.Players = []common.Address{}
	next.PendingRequest = nil
	next.PoolBalance = new(big.Int)
	next.LastTriggerTime = r.clock.Now()
	next.Phase = models.PhaseOpen
	next.Round++

	payoutID := PayoutID(s.Round)
	err := r.commit(ctx, next, func(txCtx context.Context) error {
		return r.pay(txCtx, payoutID, winner, prize)
	})
	if err != nil {
		if !errors.Is(err, ErrTransferFailed) {
			err = fmt.Errorf("persist resolution: %w", err)
		}
		return common.Address{}, err
	}

	r.publish(ctx, WinnerPicked{
		Winner:      winner,
		Amount:      prize,
		Round:       s.Round,
		RequestID:   requestID,
		RandomValue: new(big.Int).Set(randomValue),
		Players:     players,
		At:          next.UpdatedAt,
	})
	return winner, nil
}
