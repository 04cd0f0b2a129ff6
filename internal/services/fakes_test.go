package services

import (
	"context"
	"math/big"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/metrics"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memWinnerRepo struct {
	mu      sync.Mutex
	winners []*models.Winner
}

func (r *memWinnerRepo) Create(_ context.Context, w *models.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = primitive.NewObjectID()
	r.winners = append(r.winners, w)
	return nil
}

func (r *memWinnerRepo) FindByRound(_ context.Context, round uint64) (*models.Winner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.winners {
		if w.Round == round {
			return w, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memWinnerRepo) FindByAddress(_ context.Context, address string, page, limit int) ([]*models.Winner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Winner
	for _, w := range r.winners {
		if w.Address == address {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memWinnerRepo) FindAll(_ context.Context, page, limit int) ([]*models.Winner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]*models.Winner(nil), r.winners...)
	sort.Slice(out, func(i, j int) bool { return out[i].Round > out[j].Round })
	return paginate(out, page, limit), nil
}

func (r *memWinnerRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.winners)), nil
}

type memEventRepo struct {
	mu     sync.Mutex
	events []*models.RaffleEvent
}

func (r *memEventRepo) Create(_ context.Context, e *models.RaffleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = primitive.NewObjectID()
	r.events = append(r.events, e)
	return nil
}

func (r *memEventRepo) FindAll(_ context.Context, page, limit int, eventType models.RaffleEventType) ([]*models.RaffleEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.RaffleEvent
	for i := len(r.events) - 1; i >= 0; i-- {
		if eventType == "" || r.events[i].Type == eventType {
			out = append(out, r.events[i])
		}
	}
	return paginate(out, page, limit), nil
}

func (r *memEventRepo) FindByRound(_ context.Context, round uint64) ([]*models.RaffleEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.RaffleEvent
	for _, e := range r.events {
		if e.Round == round {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEventRepo) types() []models.RaffleEventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]models.RaffleEventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]*models.Account{}}
}

func (r *memAccountRepo) Credit(_ context.Context, payoutID, address string, amount *big.Int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[address]
	if !ok {
		acc = &models.Account{Address: address, Balance: "0"}
		r.accounts[address] = acc
	}
	if acc.HasPayout(payoutID) {
		return false, nil
	}
	bal, _ := new(big.Int).SetString(acc.Balance, 10)
	acc.Balance = bal.Add(bal, amount).String()
	acc.Payouts++
	acc.AppliedPayouts = append(acc.AppliedPayouts, payoutID)
	return true, nil
}

func (r *memAccountRepo) FindByAddress(_ context.Context, address string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[address]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *acc
	cp.AppliedPayouts = append([]string(nil), acc.AppliedPayouts...)
	return &cp, nil
}

type memBlacklistRepo struct {
	mu      sync.Mutex
	entries map[string]*models.BlacklistEntry
}

func newMemBlacklistRepo() *memBlacklistRepo {
	return &memBlacklistRepo{entries: map[string]*models.BlacklistEntry{}}
}

func (r *memBlacklistRepo) IsBlacklisted(_ context.Context, address string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[address]
	return ok, nil
}

func (r *memBlacklistRepo) Add(_ context.Context, entry *models.BlacklistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Address] = entry
	return nil
}

func (r *memBlacklistRepo) Remove(_ context.Context, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[address]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.entries, address)
	return nil
}

func (r *memBlacklistRepo) FindAll(context.Context) ([]*models.BlacklistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.BlacklistEntry{}
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}

type memAdminRepo struct {
	mu    sync.Mutex
	users map[string]*models.AdminUser
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{users: map[string]*models.AdminUser{}}
}

func (r *memAdminRepo) Create(_ context.Context, u *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = primitive.NewObjectID()
	r.users[u.Email] = u
	return nil
}

func (r *memAdminRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *memAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memAdminRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type seqOracle struct {
	mu   sync.Mutex
	next uint64
}

func (o *seqOracle) RequestRandomWords(context.Context, models.OracleConfig) (models.RequestHandle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.next++
	return models.RequestHandle{ID: strconv.FormatUint(o.next, 10)}, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const testInterval = time.Minute

var testEntryFee = big.NewInt(10_000_000_000_000_000)

type stack struct {
	service   *RaffleServiceImpl
	payout    *PayoutServiceImpl
	clock     *fakeClock
	winners   *memWinnerRepo
	events    *memEventRepo
	accounts  *memAccountRepo
	blacklist *memBlacklistRepo
}

func newStack(t *testing.T) *stack {
	t.Helper()

	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	s := &stack{
		clock:     &fakeClock{now: time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC)},
		winners:   &memWinnerRepo{},
		events:    &memEventRepo{},
		accounts:  newMemAccountRepo(),
		blacklist: newMemBlacklistRepo(),
	}
	s.payout = NewPayoutService(s.accounts, s.blacklist)

	r, err := raffle.New(context.Background(), raffle.Config{
		EntryFee: testEntryFee,
		Interval: testInterval,
	}, raffle.Dependencies{
		Oracle:     &seqOracle{},
		Transferer: s.payout,
		Sink:       NewEventService(s.events, s.winners, m),
		Clock:      s.clock,
	})
	require.NoError(t, err)

	s.service = NewRaffleService(r, s.winners, s.events, s.accounts, m)
	return s
}

func addr(i int) common.Address {
	return common.BigToAddress(big.NewInt(int64(0xabc0 + i)))
}
