package utils

import (
	"context"
	"log"
	"time"

	"streamhub/db"
	"streamhub/models"
	"streamhub/websocket"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PushNotification appends a notification document for a user and mirrors it to
// connected clients. A failed insert is logged, never surfaced: notifications are
// a side channel and must not fail the triggering request.
func PushNotification(ctx context.Context, notification models.Notification) {
	notification.ID = primitive.NewObjectID()
	if notification.CreatedAt == 0 {
		notification.CreatedAt = time.Now().UnixMilli()
	}

	if _, err := db.GetCollection(db.NotificationsCollection).InsertOne(ctx, notification); err != nil {
		log.Printf("Error saving notification for %s: %v", notification.UserID, err)
		return
	}

	websocket.BroadcastEvent(models.GamificationEvent{
		Type:      "notification",
		UserID:    notification.UserID,
		Timestamp: notification.CreatedAt,
	})
}
