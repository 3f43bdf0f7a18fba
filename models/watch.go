package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WatchHistoryEntry is one watch session. WatchedAt is epoch milliseconds.
type WatchHistoryEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"userId" json:"userId"`
	StreamerID   string             `bson:"streamerId" json:"streamerId"`
	StreamerName string             `bson:"streamerName" json:"streamerName"`
	Duration     int64              `bson:"duration" json:"duration"` // milliseconds
	Thumbnail    string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	WatchedAt    int64              `bson:"watchedAt" json:"watchedAt"`
}

// UserWatchStats is the per-user watch-time aggregate keyed by user id.
// WatchTime holds per-streamer cumulative milliseconds.
type UserWatchStats struct {
	UserID      string           `bson:"_id" json:"userId"`
	TotalTimeMs int64            `bson:"totalTimeMs" json:"totalTimeMs"`
	LastActive  int64            `bson:"lastActive" json:"lastActive"`
	WatchTime   map[string]int64 `bson:"watchTime" json:"watchTime"`
}
