package controllers

import (
	"context"
	"errors"
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

// ClaimDailyReward advances the caller's login streak and credits the reward
func ClaimDailyReward(c *gin.Context) {
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

	now := time.Now().UnixMilli()
	result, err := services.ClaimDaily(now, user.LoginStreak)
	if err != nil {
		var claimed *services.AlreadyClaimedError
		if errors.As(err, &claimed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "Already claimed today",
				"nextClaimAt": claimed.NextClaimAt,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Compare-and-swap on the lastLogin that was read: a concurrent claim that
	// committed first changes it, this update then matches nothing and no second
	// reward is credited.
	filter := bson.M{
		"_id":                   currentUserID,
		"loginStreak.lastLogin": user.LoginStreak.LastLogin,
	}
	update := bson.M{
		"$set": bson.M{
			"loginStreak.current":   result.Streak.Current,
			"loginStreak.longest":   result.Streak.Longest,
			"loginStreak.lastLogin": result.Streak.LastLogin,
			"updatedAt":             time.Now(),
		},
		"$inc": bson.M{
			"points":                  result.Reward,
			"stats.totalPointsEarned": result.Reward,
		},
	}

	updateResult, err := db.GetCollection(db.UsersCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Printf("Error committing daily claim for %s: %v", currentUserID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim daily reward"})
		return
	}
	if updateResult.ModifiedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "Already claimed today",
			"nextClaimAt": now + services.DayMs,
		})
		return
	}

	if result.IsMilestone {
		utils.PushNotification(ctx, models.Notification{
			UserID:    currentUserID.Hex(),
			Type:      "achievement",
			Title:     fmt.Sprintf("%d Day Streak! 🔥", result.Streak.Current),
			Message:   fmt.Sprintf("Amazing! You've logged in for %d days in a row! Bonus reward: %d points", result.Streak.Current, result.Reward),
			CreatedAt: now,
		})
	}

	websocket.BroadcastEvent(models.GamificationEvent{
		Type:      "streak_claimed",
		UserID:    currentUserID.Hex(),
		Points:    result.Reward,
		Streak:    result.Streak.Current,
		Timestamp: now,
	})

	c.JSON(http.StatusOK, gin.H{
		"reward":        result.Reward,
		"streak":        result.Streak.Current,
		"longestStreak": result.Streak.Longest,
		"isMilestone":   result.IsMilestone,
		"nextReward":    result.NextReward,
	})
}

// GetStreakStatus returns the caller's streak and claim availability. Read-only.
func GetStreakStatus(c *gin.Context) {
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

	canClaim, nextClaimAt := services.CanClaim(time.Now().UnixMilli(), user.LoginStreak)

	c.JSON(http.StatusOK, gin.H{
		"current":     user.LoginStreak.Current,
		"longest":     user.LoginStreak.Longest,
		"lastLogin":   user.LoginStreak.LastLogin,
		"canClaim":    canClaim,
		"nextClaimAt": nextClaimAt,
	})
}
