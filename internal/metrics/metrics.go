// Package metrics exposes the raffle's prometheus collectors.
package metrics

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "raffle"

type Metrics struct {
	entries        prometheus.Counter
	upkeeps        prometheus.Counter
	winners        prometheus.Counter
	payoutFailures prometheus.Counter
	reissues       prometheus.Counter
	paidOut        prometheus.Counter

	poolBalance prometheus.Gauge
	players     prometheus.Gauge
	phase       prometheus.Gauge
	round       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// Collectors registered earlier under the same name are tolerated.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		entries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_total",
			Help:      "number of accepted entries",
		}),
		upkeeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upkeeps_total",
			Help:      "number of randomness requests issued by upkeep",
		}),
		winners: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "winners_total",
			Help:      "number of resolved rounds",
		}),
		payoutFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_failures_total",
			Help:      "number of fulfillments aborted by a failed transfer",
		}),
		reissues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_reissues_total",
			Help:      "number of stale randomness requests replaced",
		}),
		paidOut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_out_wei_total",
			Help:      "sum of all payouts, approximate above 2^53 wei",
		}),
		poolBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_balance_wei",
			Help:      "funds held for the current round",
		}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players",
			Help:      "entries recorded in the current round",
		}),
		phase: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase",
			Help:      "0 while open, 1 while calculating",
		}),
		round: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "round",
			Help:      "current round number",
		}),
	}

	collectorsToRegister := map[string]prometheus.Collector{
		"entries":         m.entries,
		"upkeeps":         m.upkeeps,
		"winners":         m.winners,
		"payout failures": m.payoutFailures,
		"reissues":        m.reissues,
		"paid out":        m.paidOut,
		"pool balance":    m.poolBalance,
		"players":         m.players,
		"phase":           m.phase,
		"round":           m.round,
	}
	for collectorName, collectorToRegister := range collectorsToRegister {
		err := reg.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return nil, fmt.Errorf("cannot register %s collector: %w", collectorName, err)
		}
	}
	return m, nil
}

func (m *Metrics) EntryRecorded() {
	m.entries.Inc()
}

func (m *Metrics) UpkeepTriggered() {
	m.upkeeps.Inc()
}

func (m *Metrics) WinnerPicked(amount *big.Int) {
	m.winners.Inc()
	m.paidOut.Add(toFloat(amount))
}

func (m *Metrics) PayoutFailed() {
	m.payoutFailures.Inc()
}

func (m *Metrics) RequestReissued() {
	m.reissues.Inc()
}

// ObserveState updates the gauges from a state snapshot
func (m *Metrics) ObserveState(s *models.RaffleState) {
	m.poolBalance.Set(toFloat(s.PoolBalance))
	m.players.Set(float64(len(s.Players)))
	m.phase.Set(float64(s.Phase))
	m.round.Set(float64(s.Round))
}

func toFloat(v *big.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
