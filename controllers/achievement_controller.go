package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"streamhub/db"
	"streamhub/models"
	"streamhub/services"
	"streamhub/utils"
	"streamhub/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnlockedAchievement is a newly granted achievement in the evaluation response
type UnlockedAchievement struct {
	models.AchievementDefinition
	UnlockedAt int64 `json:"unlockedAt"`
}

// statSnapshotForUser assembles the evaluation inputs from a user document
func statSnapshotForUser(user *models.User) services.StatSnapshot {
	return services.StatSnapshot{
		WatchTimeMs: user.Stats.TotalWatchTime,
		Followers:   int64(len(user.Followers)),
		Messages:    user.Stats.MessagesSent,
		Clips:       user.Stats.ClipsCreated,
		Streak:      int64(user.LoginStreak.Current),
		Referrals:   int64(len(user.Referral.ReferredUsers)),
	}
}

// EvaluateAchievements checks the caller's stats against the catalog and grants
// every newly qualifying achievement
func EvaluateAchievements(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := utils.FindUserByID(ctx, currentUserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	unlocked := make(map[string]bool, len(user.Achievements))
	for _, a := range user.Achievements {
		unlocked[a.ID] = true
	}

	now := time.Now().UnixMilli()
	newlyUnlocked, records, totalPoints := services.EvaluateAchievements(statSnapshotForUser(user), unlocked, now)

	if len(newlyUnlocked) == 0 {
		c.JSON(http.StatusOK, gin.H{"newAchievements": []UnlockedAchievement{}})
		return
	}

	newIDs := make([]string, len(records))
	for i, r := range records {
		newIDs[i] = r.ID
	}

	// Points credit and record append commit in one document update. The filter
	// excludes the ids being granted, so a concurrent evaluation that already
	// granted any of them matches nothing instead of double-crediting.
	update := bson.M{
		"$push": bson.M{"achievements": bson.M{"$each": records}},
		"$inc": bson.M{
			"points":                  totalPoints,
			"stats.totalPointsEarned": totalPoints,
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	filter := bson.M{
		"_id":             currentUserID,
		"achievements.id": bson.M{"$nin": newIDs},
	}

	result, err := db.GetCollection(db.UsersCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Printf("Error granting achievements for %s: %v", currentUserID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant achievements"})
		return
	}
	if result.ModifiedCount == 0 {
		// Lost the race to a concurrent evaluation; nothing was applied
		c.JSON(http.StatusOK, gin.H{"newAchievements": []UnlockedAchievement{}})
		return
	}

	response := make([]UnlockedAchievement, 0, len(newlyUnlocked))
	for i, def := range newlyUnlocked {
		response = append(response, UnlockedAchievement{AchievementDefinition: def, UnlockedAt: records[i].UnlockedAt})

		utils.PushNotification(ctx, models.Notification{
			UserID:    currentUserID.Hex(),
			Type:      "achievement",
			Title:     "Achievement Unlocked!",
			Message:   fmt.Sprintf("You unlocked %q! +%d points", def.Name, def.Reward.Points),
			CreatedAt: now,
		})

		websocket.BroadcastEvent(models.GamificationEvent{
			Type:          "achievement_unlocked",
			UserID:        currentUserID.Hex(),
			AchievementID: def.ID,
			Points:        def.Reward.Points,
			Timestamp:     now,
		})
	}

	c.JSON(http.StatusOK, gin.H{"newAchievements": response})
}

// GetAchievementProgress reports catalog-wide progress for the caller. Read-only.
func GetAchievementProgress(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := utils.FindUserByID(ctx, currentUserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	achievements := services.AchievementProgress(statSnapshotForUser(user), user.Achievements)
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}
