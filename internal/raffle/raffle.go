// Package raffle implements the raffle state machine: entries, upkeep
// eligibility, the asynchronous randomness request and its fulfillment,
// and the payout of the pool to the drawn winner.
package raffle

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/exp/slog"
)

// Config is fixed when the raffle is first created
type Config struct {
	EntryFee       *big.Int
	Interval       time.Duration
	RequestTimeout time.Duration // zero allows reissuing a pending request at any time
	Oracle         models.OracleConfig
}

// Dependencies are the raffle's collaborators. Oracle and Transferer are required.
type Dependencies struct {
	Oracle     Oracle
	Transferer Transferer
	Store      StateStore
	Transactor Transactor
	Sink       EventSink
	Clock      Clock
}

// Raffle owns the single RaffleState. Mutating operations are serialised and
// either commit completely or leave the state untouched.
type Raffle struct {
	mu    deadlock.RWMutex
	state *models.RaffleState
	cfg   Config

	oracle Oracle
	payout Transferer
	store  StateStore
	tx     Transactor
	sink   EventSink
	clock  Clock
}

// New restores the persisted state or, on first start, creates and saves an OPEN one.
func New(ctx context.Context, cfg Config, deps Dependencies) (*Raffle, error) {
	if cfg.EntryFee == nil || cfg.EntryFee.Sign() < 0 {
		return nil, errors.New("entry fee must be a non-negative amount")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("interval must not be negative")
	}
	if deps.Oracle == nil {
		return nil, errors.New("randomness oracle is required")
	}
	if deps.Transferer == nil {
		return nil, errors.New("payout transferer is required")
	}
	if cfg.Oracle.NumWords == 0 {
		cfg.Oracle.NumWords = 1
	}

	r := &Raffle{
		cfg:    cfg,
		oracle: deps.Oracle,
		payout: deps.Transferer,
		store:  deps.Store,
		tx:     deps.Transactor,
		sink:   deps.Sink,
		clock:  deps.Clock,
	}
	if r.store == nil {
		r.store = NewMemoryStore()
	}
	if r.tx == nil {
		r.tx = DirectTransactor{}
	}
	if r.sink == nil {
		r.sink = nopSink{}
	}
	if r.clock == nil {
		r.clock = systemClock{}
	}

	state, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load raffle state: %w", err)
	}
	if state != nil {
		for _, d := range configDrift(cfg, state) {
			slog.Warn("Configured raffle parameter ignored, persisted value kept", "parameter", d.name, "configured", d.configured, "persisted", d.persisted)
		}
		r.state = state
		return r, nil
	}

	initial := models.NewRaffleState(cfg.EntryFee, cfg.Interval, r.clock.Now())
	if err := r.store.Save(ctx, initial); err != nil {
		return nil, fmt.Errorf("save initial raffle state: %w", err)
	}
	r.state = initial
	return r, nil
}

// commit saves next inside one transaction together with effects and only then
// installs it as the current state. Callers hold the write lock.
func (r *Raffle) commit(ctx context.Context, next *models.RaffleState, effects func(ctx context.Context) error) error {
	next.UpdatedAt = r.clock.Now()
	err := r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if effects != nil {
			if err := effects(txCtx); err != nil {
				return err
			}
		}
		return r.store.Save(txCtx, next)
	})
	if err != nil {
		return err
	}
	r.state = next
	return nil
}

func (r *Raffle) publish(ctx context.Context, event Event) {
	r.sink.Publish(ctx, event)
}

func (r *Raffle) Phase() models.Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Phase
}

func (r *Raffle) EntryFee() *big.Int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return new(big.Int).Set(r.state.EntryFee)
}

func (r *Raffle) Interval() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Interval
}

func (r *Raffle) LastTriggerTime() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.LastTriggerTime
}

func (r *Raffle) NumberOfPlayers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.state.Players)
}

// Player returns the participant recorded at index i of the current round
func (r *Raffle) Player(i int) (common.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.state.Players) {
		return common.Address{}, fmt.Errorf("%w: %d (players=%d)", ErrPlayerIndex, i, len(r.state.Players))
	}
	return r.state.Players[i], nil
}

// RecentWinner returns the last paid winner; ok is false before the first round resolves
func (r *Raffle) RecentWinner() (winner common.Address, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state.RecentWinner == nil {
		return common.Address{}, false
	}
	return *r.state.RecentWinner, true
}

func (r *Raffle) PoolBalance() *big.Int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return new(big.Int).Set(r.state.PoolBalance)
}

func (r *Raffle) PendingRequest() (models.RequestHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state.PendingRequest == nil {
		return models.RequestHandle{}, false
	}
	return *r.state.PendingRequest, true
}

func (r *Raffle) Round() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Round
}

func (r *Raffle) OracleConfig() models.OracleConfig {
	return r.cfg.Oracle
}

func (r *Raffle) RequestTimeout() time.Duration {
	return r.cfg.RequestTimeout
}

// Snapshot returns a copy of the whole state
func (r *Raffle) Snapshot() *models.RaffleState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}

type drift struct {
	name       string
	configured string
	persisted  string
}

// configDrift lists the parameters whose configured value differs from the
// restored state. The persisted values stay in force.
func configDrift(cfg Config, state *models.RaffleState) []drift {
	var out []drift
	if state.EntryFee != nil && cfg.EntryFee.Cmp(state.EntryFee) != 0 {
		out = append(out, drift{"entryFee", cfg.EntryFee.String(), state.EntryFee.String()})
	}
	if cfg.Interval != state.Interval {
		out = append(out, drift{"interval", cfg.Interval.String(), state.Interval.String()})
	}
	return out
}
