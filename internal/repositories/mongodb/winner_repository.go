package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// Create creates a new winner
func (r *WinnerRepository) Create(ctx context.Context, winner *models.Winner) error {
	if winner.ID.IsZero() {
		winner.ID = primitive.NewObjectID()
	}
	winner.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, winner)
	return err
}

// FindByRound finds the winner of a round
func (r *WinnerRepository) FindByRound(ctx context.Context, round uint64) (*models.Winner, error) {
	var winner models.Winner
	err := r.collection.FindOne(ctx, bson.M{"round": round}).Decode(&winner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

// FindByAddress finds the rounds won by an address with pagination
func (r *WinnerRepository) FindByAddress(ctx context.Context, address string, page, limit int) ([]*models.Winner, error) {
	return r.find(ctx, bson.M{"address": address}, page, limit)
}

// FindAll lists winners, most recent round first
func (r *WinnerRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Winner, error) {
	return r.find(ctx, bson.M{}, page, limit)
}

func (r *WinnerRepository) find(ctx context.Context, filter bson.M, page, limit int) ([]*models.Winner, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"round": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	winners := []*models.Winner{}
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	return winners, nil
}

// Count counts all winners
func (r *WinnerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
