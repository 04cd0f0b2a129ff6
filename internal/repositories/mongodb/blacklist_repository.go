package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlacklistRepository implements the repositories.BlacklistRepository interface
type BlacklistRepository struct {
	collection *mongo.Collection
}

// NewBlacklistRepository creates a new BlacklistRepository
func NewBlacklistRepository(db *mongo.Database) repositories.BlacklistRepository {
	return &BlacklistRepository{
		collection: db.Collection("blacklist"),
	}
}

// IsBlacklisted checks if an address exists in the blacklist collection.
func (r *BlacklistRepository) IsBlacklisted(ctx context.Context, address string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"address": address})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add adds an address to the blacklist. Adding a listed address again updates its reason.
func (r *BlacklistRepository) Add(ctx context.Context, entry *models.BlacklistEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{"reason": entry.Reason, "createdBy": entry.CreatedBy},
		"$setOnInsert": bson.M{
			"_id":       entry.ID,
			"createdAt": entry.CreatedAt,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"address": entry.Address}, update, options.Update().SetUpsert(true))
	return err
}

// Remove removes an address from the blacklist
func (r *BlacklistRepository) Remove(ctx context.Context, address string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"address": address})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// FindAll finds all blacklist entries
func (r *BlacklistRepository) FindAll(ctx context.Context) ([]*models.BlacklistEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*models.BlacklistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
