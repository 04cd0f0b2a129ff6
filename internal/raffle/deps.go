package raffle

import (
	"context"
	"math/big"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
)

// Oracle issues randomness requests. The response arrives later through
// Raffle.FulfillRandomness and must not be delivered synchronously from
// RequestRandomWords.
type Oracle interface {
	RequestRandomWords(ctx context.Context, cfg models.OracleConfig) (models.RequestHandle, error)
}

// Transferer moves the pool to a winner. A non-nil error means nothing was paid.
// Transfer must be idempotent per payoutID: repeating a payout that was already
// applied returns nil and pays nothing. Resolution relies on this when the
// Transactor cannot roll the transfer back.
type Transferer interface {
	Transfer(ctx context.Context, payoutID string, to common.Address, amount *big.Int) error
}

// StateStore persists the raffle state. Load returns (nil, nil) when nothing was saved yet.
type StateStore interface {
	Load(ctx context.Context) (*models.RaffleState, error)
	Save(ctx context.Context, state *models.RaffleState) error
}

// Transactor runs fn as one atomic unit. Writes done through the ctx passed to fn
// are committed together or not at all.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DirectTransactor runs fn without a surrounding transaction
type DirectTransactor struct{}

func (DirectTransactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
