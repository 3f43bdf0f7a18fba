package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStats holds the cumulative counters evaluated for achievements
type UserStats struct {
	TotalWatchTime    int64 `bson:"totalWatchTime" json:"totalWatchTime"` // milliseconds
	MessagesSent      int64 `bson:"messagesSent" json:"messagesSent"`
	ClipsCreated      int64 `bson:"clipsCreated" json:"clipsCreated"`
	TotalPointsEarned int64 `bson:"totalPointsEarned" json:"totalPointsEarned"`
}

// LoginStreak tracks consecutive daily claims. Timestamps are epoch milliseconds.
type LoginStreak struct {
	Current   int   `bson:"current" json:"current"`
	Longest   int   `bson:"longest" json:"longest"`
	LastLogin int64 `bson:"lastLogin" json:"lastLogin"`
}

// Referral holds a user's referral code and who they brought in
type Referral struct {
	Code          string   `bson:"code" json:"code"`
	ReferredBy    string   `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	ReferredUsers []string `bson:"referredUsers" json:"referredUsers"`
	TotalRewards  int64    `bson:"totalRewards" json:"totalRewards"`
}

// User defines a user entity. Follower/following/blocked lists hold hex user ids.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email              string             `bson:"email" json:"email"`
	Username           string             `bson:"username" json:"username"`
	ProfilePic         string             `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	Verified           bool               `bson:"verified" json:"verified"`
	Badge              string             `bson:"badge,omitempty" json:"badge,omitempty"`
	Role               string             `bson:"role,omitempty" json:"role,omitempty"`
	Points             int64              `bson:"points" json:"points"`
	Stats              UserStats          `bson:"stats" json:"stats"`
	LoginStreak        LoginStreak        `bson:"loginStreak" json:"loginStreak"`
	Achievements       []UserAchievement  `bson:"achievements" json:"achievements"`
	Followers          []string           `bson:"followers" json:"followers"`
	Following          []string           `bson:"following" json:"following"`
	FollowingStreamers []string           `bson:"followingStreamers" json:"followingStreamers"`
	BlockedUsers       []string           `bson:"blockedUsers" json:"blockedUsers"`
	Referral           Referral           `bson:"referral" json:"referral"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
