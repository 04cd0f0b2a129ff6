package services

import (
	"context"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
)

// RaffleService defines the operations exposed over the API
type RaffleService interface {
	// Status returns a snapshot of the raffle state
	Status(ctx context.Context) *models.RaffleStatus

	// Players lists the entries of the current round in entry order
	Players(ctx context.Context) []common.Address

	// Player returns the entry at index
	Player(ctx context.Context, index int) (common.Address, error)

	// Enter records an entry paid with amount
	Enter(ctx context.Context, participant common.Address, amount *big.Int) error

	CheckUpkeep(ctx context.Context, checkData []byte) (bool, []byte)
	PerformUpkeep(ctx context.Context, performData []byte) (models.RequestHandle, error)

	// FulfillRandomness resolves the pending round with the first random word
	FulfillRandomness(ctx context.Context, requestID string, randomWords []*big.Int) (common.Address, error)

	// ReissueRequest replaces a pending request that timed out
	ReissueRequest(ctx context.Context) (models.RequestHandle, error)

	// Winners lists past winners, most recent first, with the total count
	Winners(ctx context.Context, page, limit int) ([]*models.Winner, int64, error)

	// Events lists the event log, most recent first
	Events(ctx context.Context, page, limit int, eventType models.RaffleEventType) ([]*models.RaffleEvent, error)

	// Account returns the payouts credited to address
	Account(ctx context.Context, address common.Address) (*models.Account, error)
}

// PayoutService moves the pool to winners and manages addresses that cannot accept funds
type PayoutService interface {
	Transfer(ctx context.Context, payoutID string, to common.Address, amount *big.Int) error
	Blacklist(ctx context.Context) ([]*models.BlacklistEntry, error)
	AddToBlacklist(ctx context.Context, address common.Address, reason, createdBy string) error
	RemoveFromBlacklist(ctx context.Context, address common.Address) error
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}
