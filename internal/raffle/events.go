package raffle

import (
	"context"
	"math/big"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
)

// Event is a notification emitted after a raffle operation commits
type Event interface {
	EventType() models.RaffleEventType
}

// EventSink receives events in emission order. Publish is called while the
// raffle is locked, so implementations must not call back into the raffle.
type EventSink interface {
	Publish(ctx context.Context, event Event)
}

type EntryRecorded struct {
	Participant common.Address
	Amount      *big.Int
	Round       uint64
	At          time.Time
}

type UpkeepTriggered struct {
	RequestID string
	Round     uint64
	Players   int
	Pool      *big.Int
	At        time.Time
}

type WinnerPicked struct {
	Winner      common.Address
	Amount      *big.Int
	Round       uint64
	RequestID   string
	RandomValue *big.Int
	Players     int
	At          time.Time
}

type RequestReissued struct {
	PreviousRequestID string
	RequestID         string
	Round             uint64
	At                time.Time
}

func (EntryRecorded) EventType() models.RaffleEventType   { return models.EventEntryRecorded }
func (UpkeepTriggered) EventType() models.RaffleEventType { return models.EventUpkeepTriggered }
func (WinnerPicked) EventType() models.RaffleEventType    { return models.EventWinnerPicked }
func (RequestReissued) EventType() models.RaffleEventType { return models.EventRequestReissued }

type nopSink struct{}

func (nopSink) Publish(context.Context, Event) {}

// SinkFunc adapts a function to EventSink
type SinkFunc func(ctx context.Context, event Event)

func (f SinkFunc) Publish(ctx context.Context, event Event) { f(ctx, event) }

// MultiSink fans events out to several sinks in order
type MultiSink []EventSink

func (m MultiSink) Publish(ctx context.Context, event Event) {
	for _, s := range m {
		s.Publish(ctx, event)
	}
}
