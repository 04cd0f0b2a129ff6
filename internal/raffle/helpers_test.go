package raffle

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const testInterval = 30 * time.Second

var testEntryFee = big.NewInt(10_000_000_000_000_000) // 0.01 ether

var testOracleConfig = models.OracleConfig{
	Coordinator:      common.HexToAddress("0x2Ca8E0C643bDe4C2E08ab1fA0da3401AdAD7734D"),
	GasLane:          common.HexToHash("0x79d3d8832d904592c0bf9818b621522c988bb8b0c05cdc3b15aea1b6e8db0c15"),
	SubscriptionID:   1,
	CallbackGasLimit: 500000,
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC)}
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

// seqOracle hands out request ids 1, 2, 3... like the local coordinator
type seqOracle struct {
	mu       sync.Mutex
	next     uint64
	requests []models.OracleConfig
	err      error
}

func (o *seqOracle) RequestRandomWords(_ context.Context, cfg models.OracleConfig) (models.RequestHandle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return models.RequestHandle{}, o.err
	}
	o.next++
	o.requests = append(o.requests, cfg)
	return models.RequestHandle{ID: strconv.FormatUint(o.next, 10)}, nil
}

func (o *seqOracle) Requests() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.requests)
}

type bank struct {
	mu       sync.Mutex
	balances map[common.Address]*big.Int
	refuse   map[common.Address]bool
	applied  map[string]bool
	payouts  int
}

var errRefused = errors.New("recipient refused funds")

func newBank() *bank {
	return &bank{
		balances: map[common.Address]*big.Int{},
		refuse:   map[common.Address]bool{},
		applied:  map[string]bool{},
	}
}

func (b *bank) Transfer(_ context.Context, payoutID string, to common.Address, amount *big.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refuse[to] {
		return errRefused
	}
	if b.applied[payoutID] {
		return nil
	}
	b.applied[payoutID] = true
	b.payouts++
	bal, ok := b.balances[to]
	if !ok {
		bal = new(big.Int)
		b.balances[to] = bal
	}
	bal.Add(bal, amount)
	return nil
}

// Payouts counts transfers that moved funds
func (b *bank) Payouts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.payouts
}

func (b *bank) Balance(addr common.Address) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if bal, ok := b.balances[addr]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Publish(_ context.Context, e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) Types() []models.RaffleEventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]models.RaffleEventType, len(s.events))
	for i, e := range s.events {
		types[i] = e.EventType()
	}
	return types
}

func (s *recordingSink) Last() Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return nil
	}
	return s.events[len(s.events)-1]
}

// flakyStore fails Save while failing is set
type flakyStore struct {
	*MemoryStore
	failing bool
}

var errStoreDown = errors.New("store unavailable")

func (f *flakyStore) Save(ctx context.Context, s *models.RaffleState) error {
	if f.failing {
		return errStoreDown
	}
	return f.MemoryStore.Save(ctx, s)
}

type harness struct {
	raffle *Raffle
	clock  *fakeClock
	oracle *seqOracle
	bank   *bank
	sink   *recordingSink
	store  *flakyStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:  newFakeClock(),
		oracle: &seqOracle{},
		bank:   newBank(),
		sink:   &recordingSink{},
		store:  &flakyStore{MemoryStore: NewMemoryStore()},
	}
	r, err := New(context.Background(), Config{
		EntryFee:       testEntryFee,
		Interval:       testInterval,
		RequestTimeout: time.Hour,
		Oracle:         testOracleConfig,
	}, Dependencies{
		Oracle:     h.oracle,
		Transferer: h.bank,
		Store:      h.store,
		Sink:       h.sink,
		Clock:      h.clock,
	})
	require.NoError(t, err)
	h.raffle = r
	return h
}

func player(i int) common.Address {
	return common.BigToAddress(big.NewInt(int64(0x1000 + i)))
}

func fee(multiple int64) *big.Int {
	return new(big.Int).Mul(testEntryFee, big.NewInt(multiple))
}

// enterAll enters each participant once with exactly the entry fee
func (h *harness) enterAll(t *testing.T, players ...common.Address) {
	t.Helper()
	for _, p := range players {
		require.NoError(t, h.raffle.Enter(context.Background(), p, testEntryFee))
	}
}

// trigger lets the interval elapse and performs upkeep
func (h *harness) trigger(t *testing.T) models.RequestHandle {
	t.Helper()
	h.clock.Advance(testInterval + time.Second)
	handle, err := h.raffle.PerformUpkeep(context.Background(), nil)
	require.NoError(t, err)
	return handle
}
