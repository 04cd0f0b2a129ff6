package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner records a completed round and its payout
type Winner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Round       uint64             `bson:"round" json:"round"`
	Address     string             `bson:"address" json:"address"`
	Amount      string             `bson:"amount" json:"amount"` // wei, decimal string
	RequestID   string             `bson:"requestId" json:"requestId"`
	RandomValue string             `bson:"randomValue" json:"randomValue"`
	Players     int                `bson:"players" json:"players"`
	PaidAt      time.Time          `bson:"paidAt" json:"paidAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
