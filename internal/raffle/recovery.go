package raffle

import (
	"context"
	"fmt"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

// ReissueRequest replaces a pending request that the oracle never answered.
// Players and pool stay frozen; the old request id is rejected from now on.
func (r *Raffle) ReissueRequest(ctx context.Context) (models.RequestHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state
	if s.Phase != models.PhaseCalculating || s.PendingRequest == nil {
		return models.RequestHandle{}, fmt.Errorf("%w: phase is %s", ErrNotCalculating, s.Phase)
	}
	now := r.clock.Now()
	age := now.Sub(s.PendingRequest.IssuedAt)
	if age < r.cfg.RequestTimeout {
		return models.RequestHandle{}, fmt.Errorf("%w: request %q is %s old, timeout is %s",
			ErrRequestNotStale, s.PendingRequest.ID, age, r.cfg.RequestTimeout)
	}

	handle, err := r.oracle.RequestRandomWords(ctx, r.cfg.Oracle)
	if err != nil {
		return models.RequestHandle{}, fmt.Errorf("request randomness: %w", err)
	}
	if handle.IssuedAt.IsZero() {
		handle.IssuedAt = now
	}

	previous := s.PendingRequest.ID
	next := s.Clone()
	next.PendingRequest = &handle
	if err := r.commit(ctx, next, nil); err != nil {
		return models.RequestHandle{}, fmt.Errorf("persist reissued request: %w", err)
	}

	r.publish(ctx, RequestReissued{
		PreviousRequestID: previous,
		RequestID:         handle.ID,
		Round:             next.Round,
		At:                next.UpdatedAt,
	})
	return handle, nil
}
