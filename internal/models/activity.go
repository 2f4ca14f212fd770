package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityAction identifies the write an activity event records.
type ActivityAction string

const (
	ActionCreated  ActivityAction = "created"
	ActionApproved ActivityAction = "approved"
	ActionRejected ActivityAction = "rejected"
)

// ActivityEvent is an append-only audit record of a content write,
// stored in MongoDB. Events are never updated or deleted.
type ActivityEvent struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ContentID  string             `json:"content_id" bson:"content_id"`
	ActorID    string             `json:"actor_id" bson:"actor_id"`
	Action     ActivityAction     `json:"action" bson:"action"`
	Notes      string             `json:"notes,omitempty" bson:"notes,omitempty"` // rejection notes when action = rejected
	OccurredAt time.Time          `json:"occurred_at" bson:"occurred_at"`
}
