package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Phase is the raffle's lifecycle phase
type Phase uint8

const (
	PhaseOpen        Phase = 0 // accepting entries
	PhaseCalculating Phase = 1 // waiting for randomness, entries blocked
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "OPEN"
	case PhaseCalculating:
		return "CALCULATING"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the phase by name in JSON responses
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// RequestHandle correlates a randomness request with its fulfillment
type RequestHandle struct {
	ID       string    `json:"requestId"`
	IssuedAt time.Time `json:"issuedAt"`
}

// OracleConfig holds the values used to address the randomness coordinator.
// They are opaque to the raffle itself.
type OracleConfig struct {
	Coordinator          common.Address `json:"coordinator"`
	GasLane              common.Hash    `json:"gasLane"`
	SubscriptionID       uint64         `json:"subscriptionId"`
	CallbackGasLimit     uint32         `json:"callbackGasLimit"`
	RequestConfirmations uint16         `json:"requestConfirmations"`
	NumWords             uint32         `json:"numWords"`
}

// RaffleState is the single mutable record of the raffle
type RaffleState struct {
	Phase           Phase            `json:"phase"`
	EntryFee        *big.Int         `json:"entryFee"`
	Interval        time.Duration    `json:"interval"`
	LastTriggerTime time.Time        `json:"lastTriggerTime"`
	Players         []common.Address `json:"players"`
	PoolBalance     *big.Int         `json:"poolBalance"`
	RecentWinner    *common.Address  `json:"recentWinner,omitempty"`
	PendingRequest  *RequestHandle   `json:"pendingRequest,omitempty"`
	Round           uint64           `json:"round"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewRaffleState creates the initial OPEN state
func NewRaffleState(entryFee *big.Int, interval time.Duration, now time.Time) *RaffleState {
	return &RaffleState{
		Phase:           PhaseOpen,
		EntryFee:        new(big.Int).Set(entryFee),
		Interval:        interval,
		LastTriggerTime: now,
		Players:         []common.Address{},
		PoolBalance:     new(big.Int),
		Round:           1,
		UpdatedAt:       now,
	}
}

// Clone returns a deep copy so a failed operation can be discarded without side effects
func (s *RaffleState) Clone() *RaffleState {
	c := *s
	c.EntryFee = cloneInt(s.EntryFee)
	c.PoolBalance = cloneInt(s.PoolBalance)
	c.Players = append(make([]common.Address, 0, len(s.Players)), s.Players...)
	if s.RecentWinner != nil {
		w := *s.RecentWinner
		c.RecentWinner = &w
	}
	if s.PendingRequest != nil {
		r := *s.PendingRequest
		c.PendingRequest = &r
	}
	return &c
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// ParsePhase is the inverse of Phase.String
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "OPEN":
		return PhaseOpen, nil
	case "CALCULATING":
		return PhaseCalculating, nil
	default:
		return 0, fmt.Errorf("unknown raffle phase %q", s)
	}
}
