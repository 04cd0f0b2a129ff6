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

var _ repositories.EventRepository = (*eventRepository)(nil)

type eventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates the raffle event log repository
func NewEventRepository(db *mongo.Database) repositories.EventRepository {
	return &eventRepository{
		collection: db.Collection("raffle_events"),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *models.RaffleEvent) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *eventRepository) FindAll(ctx context.Context, page, limit int, eventType models.RaffleEventType) ([]*models.RaffleEvent, error) {
	filter := bson.M{}
	if eventType != "" {
		filter["type"] = eventType
	}

	// ObjectIDs grow with insertion order, which is emission order
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"_id": -1})

	return r.find(ctx, filter, opts)
}

func (r *eventRepository) FindByRound(ctx context.Context, round uint64) ([]*models.RaffleEvent, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	return r.find(ctx, bson.M{"round": round}, opts)
}

func (r *eventRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.RaffleEvent, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []*models.RaffleEvent{}
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
