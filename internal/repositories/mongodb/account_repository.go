package mongodb

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository keeps one balance document per address
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		collection: db.Collection("accounts"),
	}
}

// Credit adds amount to the address balance, creating the account on first payout.
// The payout id is stored on the account document in the same replace, and the
// filter skips documents that already carry it, so a repeated payout credits
// nothing even without a surrounding transaction.
func (r *AccountRepository) Credit(ctx context.Context, payoutID, address string, amount *big.Int) (bool, error) {
	account, err := r.FindByAddress(ctx, address)
	if errors.Is(err, repositories.ErrNotFound) {
		account = &models.Account{Address: address, Balance: "0"}
	} else if err != nil {
		return false, err
	}
	if account.HasPayout(payoutID) {
		return false, nil
	}

	balance, ok := new(big.Int).SetString(account.Balance, 10)
	if !ok {
		return false, fmt.Errorf("account %s has invalid balance %q", address, account.Balance)
	}
	balance.Add(balance, amount)

	account.Balance = balance.String()
	account.Payouts++
	account.AppliedPayouts = append(account.AppliedPayouts, payoutID)
	account.UpdatedAt = time.Now()

	filter := bson.M{"_id": address, "appliedPayouts": bson.M{"$ne": payoutID}}
	_, err = r.collection.ReplaceOne(ctx, filter, account, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// the document exists but no longer matches: another writer recorded the payout first
		current, findErr := r.FindByAddress(ctx, address)
		if findErr != nil {
			return false, findErr
		}
		if current.HasPayout(payoutID) {
			return false, nil
		}
		return false, fmt.Errorf("account %s changed while crediting %s: %w", address, payoutID, err)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByAddress returns the account for address
func (r *AccountRepository) FindByAddress(ctx context.Context, address string) (*models.Account, error) {
	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"_id": address}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
