package repositories

import (
	"context"
	"errors"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no record
var ErrNotFound = errors.New("record not found")

// RaffleStateRepository persists the single raffle state record.
// Load returns nil, nil when nothing has been saved yet.
type RaffleStateRepository interface {
	Load(ctx context.Context) (*models.RaffleState, error)
	Save(ctx context.Context, state *models.RaffleState) error
}

// WinnerRepository defines the interface for winner history operations
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	FindByRound(ctx context.Context, round uint64) (*models.Winner, error)
	FindByAddress(ctx context.Context, address string, page, limit int) ([]*models.Winner, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Winner, error)
	Count(ctx context.Context) (int64, error)
}

// EventRepository defines the interface for the raffle event log.
// An empty eventType matches every event.
type EventRepository interface {
	Create(ctx context.Context, event *models.RaffleEvent) error
	FindAll(ctx context.Context, page, limit int, eventType models.RaffleEventType) ([]*models.RaffleEvent, error)
	FindByRound(ctx context.Context, round uint64) ([]*models.RaffleEvent, error)
}

// AccountRepository holds credited payouts per address
type AccountRepository interface {
	// Credit adds amount to address unless payoutID was already credited to it.
	// applied is false when the payout had been recorded before.
	Credit(ctx context.Context, payoutID, address string, amount *big.Int) (applied bool, err error)
	FindByAddress(ctx context.Context, address string) (*models.Account, error)
}

// BlacklistRepository defines the interface for blacklist operations
type BlacklistRepository interface {
	IsBlacklisted(ctx context.Context, address string) (bool, error)
	Add(ctx context.Context, entry *models.BlacklistEntry) error
	Remove(ctx context.Context, address string) error
	FindAll(ctx context.Context) ([]*models.BlacklistEntry, error)
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

// Transactor runs fn as one atomic unit. Repository calls made with the
// context handed to fn take part in it.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
