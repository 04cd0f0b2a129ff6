package raffle

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

var (
	ErrInsufficientFee   = errors.New("insufficient entry fee")
	ErrNotOpen           = errors.New("raffle is not open")
	ErrUpkeepNotNeeded   = errors.New("upkeep not needed")
	ErrUnknownRequest    = errors.New("unknown randomness request")
	ErrTransferFailed    = errors.New("payout transfer failed")
	ErrInvalidRandomness = errors.New("invalid random value")
	ErrNotCalculating    = errors.New("no randomness request is pending")
	ErrRequestNotStale   = errors.New("pending request has not timed out")
	ErrPlayerIndex       = errors.New("player index out of range")
)

// UpkeepNotNeededError reports the state that made a trigger ineligible.
// It matches ErrUpkeepNotNeeded with errors.Is.
type UpkeepNotNeededError struct {
	Balance *big.Int
	Players int
	Phase   models.Phase
}

func (e *UpkeepNotNeededError) Error() string {
	return fmt.Sprintf("%s (balance=%s players=%d phase=%s)", ErrUpkeepNotNeeded, e.Balance, e.Players, e.Phase)
}

func (e *UpkeepNotNeededError) Unwrap() error {
	return ErrUpkeepNotNeeded
}
