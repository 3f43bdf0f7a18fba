package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report is a moderation report awaiting admin review
type Report struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ReporterID       string             `bson:"reporterId" json:"reporterId"`
	ReporterUsername string             `bson:"reporterUsername" json:"reporterUsername"`
	TargetUserID     string             `bson:"targetUserId" json:"targetUserId"`
	Reason           string             `bson:"reason" json:"reason"`
	Type             string             `bson:"type" json:"type"`     // "user"
	Status           string             `bson:"status" json:"status"` // "pending", "approved", "rejected"
	HandledBy        string             `bson:"handledBy,omitempty" json:"handledBy,omitempty"`
	HandledAt        int64              `bson:"handledAt,omitempty" json:"handledAt,omitempty"`
	Response         string             `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt        int64              `bson:"createdAt" json:"createdAt"`
}
