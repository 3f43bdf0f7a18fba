package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Notification is an append-only record consumed by the delivery feature.
// CreatedAt is epoch milliseconds.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	Type      string             `bson:"type" json:"type"` // "achievement", "new_follower", "referral", "moderation"
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
