package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/exp/slog"
)

// ErrRecipientRejected is returned for blacklisted recipients
var ErrRecipientRejected = errors.New("recipient cannot accept funds")

var (
	_ PayoutService     = (*PayoutServiceImpl)(nil)
	_ raffle.Transferer = (*PayoutServiceImpl)(nil)
)

// PayoutServiceImpl credits payouts to accounts. Transfer runs inside the
// resolution transaction, so a failed credit leaves the round unresolved.
type PayoutServiceImpl struct {
	accountRepo   repositories.AccountRepository
	blacklistRepo repositories.BlacklistRepository
}

// NewPayoutService creates a new PayoutServiceImpl
func NewPayoutService(accountRepo repositories.AccountRepository, blacklistRepo repositories.BlacklistRepository) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		accountRepo:   accountRepo,
		blacklistRepo: blacklistRepo,
	}
}

// Transfer credits amount to the recipient once per payoutID
func (s *PayoutServiceImpl) Transfer(ctx context.Context, payoutID string, to common.Address, amount *big.Int) error {
	blacklisted, err := s.blacklistRepo.IsBlacklisted(ctx, to.Hex())
	if err != nil {
		return fmt.Errorf("failed to check blacklist: %w", err)
	}
	if blacklisted {
		slog.Warn("Payout refused for blacklisted recipient", "recipient", utils.MaskAddress(to), "amount", amount)
		return ErrRecipientRejected
	}

	applied, err := s.accountRepo.Credit(ctx, payoutID, to.Hex(), amount)
	if err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	if !applied {
		slog.Warn("Payout already credited, skipping", "payoutId", payoutID, "recipient", utils.MaskAddress(to))
		return nil
	}
	slog.Info("Payout credited", "payoutId", payoutID, "recipient", utils.MaskAddress(to), "amount", amount)
	return nil
}

func (s *PayoutServiceImpl) Blacklist(ctx context.Context) ([]*models.BlacklistEntry, error) {
	return s.blacklistRepo.FindAll(ctx)
}

func (s *PayoutServiceImpl) AddToBlacklist(ctx context.Context, address common.Address, reason, createdBy string) error {
	entry := &models.BlacklistEntry{
		Address:   address.Hex(),
		Reason:    reason,
		CreatedBy: createdBy,
	}
	if err := s.blacklistRepo.Add(ctx, entry); err != nil {
		slog.Error("Failed to blacklist address", "error", err, "address", utils.MaskAddress(address))
		return err
	}
	slog.Info("Address blacklisted", "address", utils.MaskAddress(address), "by", createdBy)
	return nil
}

func (s *PayoutServiceImpl) RemoveFromBlacklist(ctx context.Context, address common.Address) error {
	return s.blacklistRepo.Remove(ctx, address.Hex())
}
