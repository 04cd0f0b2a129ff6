package raffle

import (
	"context"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

// CheckUpkeep reports whether PerformUpkeep may run now. checkData is handed
// back unchanged as performData.
func (r *Raffle) CheckUpkeep(_ context.Context, checkData []byte) (bool, []byte) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return upkeepNeeded(r.state, r.clock.Now()), checkData
}

func upkeepNeeded(s *models.RaffleState, now time.Time) bool {
	isOpen := s.Phase == models.PhaseOpen
	timePassed := now.Sub(s.LastTriggerTime) >= s.Interval
	hasPlayers := len(s.Players) > 0
	hasBalance := s.PoolBalance != nil && s.PoolBalance.Sign() > 0
	return isOpen && timePassed && hasPlayers && hasBalance
}
