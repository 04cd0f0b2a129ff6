package raffle

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// pickWinner selects players[randomValue mod len(players)]. Repeated entries
// by one participant raise their chance proportionally.
func pickWinner(players []common.Address, randomValue *big.Int) common.Address {
	n := big.NewInt(int64(len(players)))
	idx := new(big.Int).Mod(randomValue, n)
	return players[idx.Int64()]
}

// PayoutID names the single payout of a round. Rounds are persisted, so the id
// stays the same across retries, reissued requests and restarts.
func PayoutID(round uint64) string {
	return "round-" + strconv.FormatUint(round, 10)
}

// pay hands the whole pool to the winner. It runs inside the resolution
// transaction, so a failure here aborts the state reset as well. If the
// transfer lands but the save fails, the retry reuses the payout id and the
// Transferer skips it.
func (r *Raffle) pay(ctx context.Context, payoutID string, winner common.Address, amount *big.Int) error {
	if err := r.payout.Transfer(ctx, payoutID, winner, new(big.Int).Set(amount)); err != nil {
		return fmt.Errorf("%w: %s to %s: %w", ErrTransferFailed, amount, winner.Hex(), err)
	}
	return nil
}
