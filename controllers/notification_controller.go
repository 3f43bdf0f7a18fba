package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"streamhub/db"
	"streamhub/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MarkReadRequest marks one notification or all of them as read
type MarkReadRequest struct {
	NotificationID string `json:"notificationId,omitempty"`
	MarkAllRead    bool   `json:"markAllRead,omitempty"`
}

// GetNotifications lists the caller's notifications, newest first
func GetNotifications(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	limit := int64(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.ParseInt(limitStr, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	filter := bson.M{"userId": currentUserID.Hex()}
	if c.Query("unreadOnly") == "true" {
		filter["read"] = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := db.GetCollection(db.NotificationsCollection).Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationsRead marks one or all of the caller's notifications as read
func MarkNotificationsRead(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifications := db.GetCollection(db.NotificationsCollection)

	if req.MarkAllRead {
		result, err := notifications.UpdateMany(ctx,
			bson.M{"userId": currentUserID.Hex(), "read": false},
			bson.M{"$set": bson.M{"read": true}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": result.ModifiedCount})
		return
	}

	if req.NotificationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	notificationID, err := primitive.ObjectIDFromHex(req.NotificationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	// Ownership is enforced by the filter
	_, err = notifications.UpdateOne(ctx,
		bson.M{"_id": notificationID, "userId": currentUserID.Hex()},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteNotification removes one of the caller's notifications
func DeleteNotification(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	idParam := c.Query("id")
	if idParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification ID required"})
		return
	}

	notificationID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifications := db.GetCollection(db.NotificationsCollection)

	var notification models.Notification
	if err := notifications.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.UserID != currentUserID.Hex() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	if _, err := notifications.DeleteOne(ctx, bson.M{"_id": notificationID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
