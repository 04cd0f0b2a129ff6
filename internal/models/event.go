package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RaffleEventType string

const (
	EventEntryRecorded   RaffleEventType = "EntryRecorded"
	EventUpkeepTriggered RaffleEventType = "UpkeepTriggered"
	EventWinnerPicked    RaffleEventType = "WinnerPicked"
	EventRequestReissued RaffleEventType = "RequestReissued"
)

// RaffleEvent is the persisted form of a notification emitted by the raffle
type RaffleEvent struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type              RaffleEventType    `bson:"type" json:"type"`
	Round             uint64             `bson:"round" json:"round"`
	Participant       string             `bson:"participant,omitempty" json:"participant,omitempty"`
	Amount            string             `bson:"amount,omitempty" json:"amount,omitempty"`
	RequestID         string             `bson:"requestId,omitempty" json:"requestId,omitempty"`
	PreviousRequestID string             `bson:"previousRequestId,omitempty" json:"previousRequestId,omitempty"`
	RandomValue       string             `bson:"randomValue,omitempty" json:"randomValue,omitempty"`
	Players           int                `bson:"players,omitempty" json:"players,omitempty"`
	EmittedAt         time.Time          `bson:"emittedAt" json:"emittedAt"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
