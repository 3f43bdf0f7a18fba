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

// AddWatchHistoryRequest records one watch session
type AddWatchHistoryRequest struct {
	StreamerID   string `json:"streamerId" binding:"required"`
	StreamerName string `json:"streamerName" binding:"required"`
	Duration     int64  `json:"duration" binding:"required"` // milliseconds
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// AddWatchHistory appends a history entry and rolls the session into the
// caller's watch-time aggregate
func AddWatchHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	var req AddWatchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Duration < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must not be negative"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now().UnixMilli()
	entry := models.WatchHistoryEntry{
		ID:           primitive.NewObjectID(),
		UserID:       currentUserID.Hex(),
		StreamerID:   req.StreamerID,
		StreamerName: req.StreamerName,
		Duration:     req.Duration,
		Thumbnail:    req.Thumbnail,
		WatchedAt:    now,
	}

	if _, err := db.GetCollection(db.WatchHistoryCollection).InsertOne(ctx, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save watch history"})
		return
	}

	// Aggregate counters only ever increment, so an upserted $inc is race-safe
	_, err := db.GetCollection(db.UserStatsCollection).UpdateOne(ctx,
		bson.M{"_id": currentUserID.Hex()},
		bson.M{
			"$inc": bson.M{
				"totalTimeMs":                  req.Duration,
				"watchTime." + req.StreamerID: req.Duration,
			},
			"$set": bson.M{"lastActive": now},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watch stats"})
		return
	}

	// Keep the per-user stat the achievement evaluator reads in step
	_, err = db.GetCollection(db.UsersCollection).UpdateOne(ctx,
		bson.M{"_id": currentUserID},
		bson.M{"$inc": bson.M{"stats.totalWatchTime": req.Duration}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetWatchHistory lists the caller's history, newest first
func GetWatchHistory(c *gin.Context) {
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "watchedAt", Value: -1}}).SetLimit(limit)
	cursor, err := db.GetCollection(db.WatchHistoryCollection).Find(ctx,
		bson.M{"userId": currentUserID.Hex()}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch history"})
		return
	}
	defer cursor.Close(ctx)

	var history []models.WatchHistoryEntry
	if err := cursor.All(ctx, &history); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode watch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// ClearWatchHistory removes all of the caller's history entries
func ClearWatchHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.WatchHistoryCollection).DeleteMany(ctx,
		bson.M{"userId": currentUserID.Hex()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear watch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": result.DeletedCount})
}
