package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Clip is a short extract of a stream. Likes holds user ids.
type Clip struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	StreamerID string             `bson:"streamerId" json:"streamerId"`
	CreatorID  string             `bson:"creatorId" json:"creatorId"`
	Title      string             `bson:"title" json:"title"`
	Thumbnail  string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Views      int64              `bson:"views" json:"views"`
	Likes      []string           `bson:"likes" json:"likes"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
}

// Vod is a recorded past broadcast
type Vod struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	StreamerID string             `bson:"streamerId" json:"streamerId"`
	Title      string             `bson:"title" json:"title"`
	Thumbnail  string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Views      int64              `bson:"views" json:"views"`
	RecordedAt int64              `bson:"recordedAt" json:"recordedAt"`
}
