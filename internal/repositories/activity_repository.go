package repositories

import (
	"context"
	"time"

	"github.com/stagelink/approval/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository defines the interface for the append-only audit trail
// of content writes. Events are recorded, never updated or deleted.
type ActivityRepository interface {
	AppendEvent(ctx context.Context, event *models.ActivityEvent) error
	GetEventsByContentID(ctx context.Context, contentID string) ([]models.ActivityEvent, error)
}

// MongoActivityRepository implements ActivityRepository for MongoDB
type MongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new MongoActivityRepository
func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{collection: db.Collection("activity_events")}
}

// AppendEvent records a content write in MongoDB
func (r *MongoActivityRepository) AppendEvent(ctx context.Context, event *models.ActivityEvent) error {
	event.ID = primitive.NewObjectID()
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// GetEventsByContentID retrieves an item's audit trail, oldest first
func (r *MongoActivityRepository) GetEventsByContentID(ctx context.Context, contentID string) ([]models.ActivityEvent, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"content_id": contentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.ActivityEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
