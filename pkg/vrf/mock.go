package vrf

import (
	"context"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/exp/slog"
)

var uint256Pair = func() abi.Arguments {
	t, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: t}, {Type: t}}
}()

// MockWords derives n words as keccak256(abi.encode(requestID, i))
func MockWords(requestID *big.Int, n uint32) []*big.Int {
	words := make([]*big.Int, n)
	for i := range words {
		packed, err := uint256Pair.Pack(requestID, big.NewInt(int64(i)))
		if err != nil {
			panic(err)
		}
		words[i] = new(big.Int).SetBytes(crypto.Keccak256(packed))
	}
	return words
}

type mockCoordinator struct {
	mu        sync.Mutex
	nextID    uint64
	delay     time.Duration
	fulfiller Fulfiller

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newMockCoordinator(delay time.Duration) *mockCoordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &mockCoordinator{delay: delay, ctx: ctx, cancel: cancel}
}

func (m *mockCoordinator) setFulfiller(f Fulfiller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fulfiller = f
}

// request issues ids 1, 2, 3... and schedules delivery
func (m *mockCoordinator) request(numWords uint32) models.RequestHandle {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.mu.Unlock()

	if numWords == 0 {
		numWords = 1
	}
	handle := models.RequestHandle{ID: strconv.FormatUint(id, 10), IssuedAt: time.Now()}

	m.wg.Add(1)
	go m.deliver(handle.ID, MockWords(new(big.Int).SetUint64(id), numWords))
	return handle
}

func (m *mockCoordinator) deliver(requestID string, words []*big.Int) {
	defer m.wg.Done()

	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-m.ctx.Done():
		return
	}

	m.mu.Lock()
	f := m.fulfiller
	m.mu.Unlock()
	if f == nil {
		slog.Warn("Mock coordinator has no fulfiller, dropping words", "requestId", requestID)
		return
	}

	if err := f(m.ctx, requestID, words); err != nil {
		slog.Error("Mock fulfillment failed", "requestId", requestID, "error", err)
		return
	}
	slog.Info("Mock fulfillment delivered", "requestId", requestID, "words", len(words))
}

func (m *mockCoordinator) close() {
	m.cancel()
	m.wg.Wait()
}
