package mongodb

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ethereum/go-ethereum/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	_ repositories.RaffleStateRepository = (*RaffleStateRepository)(nil)
	_ raffle.StateStore                  = (*RaffleStateRepository)(nil)
)

const raffleStateID = "current"

// RaffleStateRepository stores the raffle state as a singleton document
type RaffleStateRepository struct {
	collection *mongo.Collection
}

// NewRaffleStateRepository creates a new RaffleStateRepository
func NewRaffleStateRepository(db *mongo.Database) *RaffleStateRepository {
	return &RaffleStateRepository{
		collection: db.Collection("raffle_state"),
	}
}

// Amounts are kept as decimal strings since they may exceed 64 bits.
type raffleStateDocument struct {
	ID              string                  `bson:"_id"`
	Phase           string                  `bson:"phase"`
	EntryFee        string                  `bson:"entryFee"`
	IntervalMs      int64                   `bson:"intervalMs"`
	LastTriggerTime time.Time               `bson:"lastTriggerTime"`
	Players         []string                `bson:"players"`
	PoolBalance     string                  `bson:"poolBalance"`
	RecentWinner    string                  `bson:"recentWinner,omitempty"`
	PendingRequest  *pendingRequestDocument `bson:"pendingRequest,omitempty"`
	Round           int64                   `bson:"round"`
	UpdatedAt       time.Time               `bson:"updatedAt"`
}

type pendingRequestDocument struct {
	ID       string    `bson:"id"`
	IssuedAt time.Time `bson:"issuedAt"`
}

func toStateDocument(s *models.RaffleState) raffleStateDocument {
	doc := raffleStateDocument{
		ID:              raffleStateID,
		Phase:           s.Phase.String(),
		EntryFee:        s.EntryFee.String(),
		IntervalMs:      s.Interval.Milliseconds(),
		LastTriggerTime: s.LastTriggerTime,
		Players:         make([]string, len(s.Players)),
		PoolBalance:     s.PoolBalance.String(),
		Round:           int64(s.Round),
		UpdatedAt:       s.UpdatedAt,
	}
	for i, p := range s.Players {
		doc.Players[i] = p.Hex()
	}
	if s.RecentWinner != nil {
		doc.RecentWinner = s.RecentWinner.Hex()
	}
	if s.PendingRequest != nil {
		doc.PendingRequest = &pendingRequestDocument{
			ID:       s.PendingRequest.ID,
			IssuedAt: s.PendingRequest.IssuedAt,
		}
	}
	return doc
}

func fromStateDocument(doc raffleStateDocument) (*models.RaffleState, error) {
	phase, err := models.ParsePhase(doc.Phase)
	if err != nil {
		return nil, err
	}
	entryFee, ok := new(big.Int).SetString(doc.EntryFee, 10)
	if !ok {
		return nil, fmt.Errorf("invalid entry fee %q", doc.EntryFee)
	}
	pool, ok := new(big.Int).SetString(doc.PoolBalance, 10)
	if !ok {
		return nil, fmt.Errorf("invalid pool balance %q", doc.PoolBalance)
	}

	s := &models.RaffleState{
		Phase:           phase,
		EntryFee:        entryFee,
		Interval:        time.Duration(doc.IntervalMs) * time.Millisecond,
		LastTriggerTime: doc.LastTriggerTime,
		Players:         make([]common.Address, len(doc.Players)),
		PoolBalance:     pool,
		Round:           uint64(doc.Round),
		UpdatedAt:       doc.UpdatedAt,
	}
	for i, p := range doc.Players {
		if !common.IsHexAddress(p) {
			return nil, fmt.Errorf("invalid player address %q at index %d", p, i)
		}
		s.Players[i] = common.HexToAddress(p)
	}
	if doc.RecentWinner != "" {
		if !common.IsHexAddress(doc.RecentWinner) {
			return nil, fmt.Errorf("invalid recent winner %q", doc.RecentWinner)
		}
		w := common.HexToAddress(doc.RecentWinner)
		s.RecentWinner = &w
	}
	if doc.PendingRequest != nil {
		s.PendingRequest = &models.RequestHandle{
			ID:       doc.PendingRequest.ID,
			IssuedAt: doc.PendingRequest.IssuedAt,
		}
	}
	return s, nil
}

// Load returns the stored state, or nil if the raffle has never been saved
func (r *RaffleStateRepository) Load(ctx context.Context) (*models.RaffleState, error) {
	var doc raffleStateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": raffleStateID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromStateDocument(doc)
}

// Save replaces the stored state
func (r *RaffleStateRepository) Save(ctx context.Context, state *models.RaffleState) error {
	doc := toStateDocument(state)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": raffleStateID}, doc, options.Replace().SetUpsert(true))
	return err
}
