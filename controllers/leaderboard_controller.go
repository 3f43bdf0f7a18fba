package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"streamhub/db"
	"streamhub/models"
	"streamhub/services"
	"streamhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// LeaderboardEntry is one enriched ranked row
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	ProfilePic string `json:"profilePic,omitempty"`
	Verified   bool   `json:"verified"`
	Value      int64  `json:"value"`
	Badge      string `json:"badge,omitempty"`
}

// GetLeaderboard ranks users by the requested metric. Public, no auth.
func GetLeaderboard(c *gin.Context) {
	metric, err := services.ParseMetric(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leaderboard type"})
		return
	}

	period, err := services.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leaderboard period"})
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sources []services.RankSource
	windowMs := int64(0)

	if metric == services.MetricWatchTime {
		// Watch time lives in the per-user aggregate collection and honors the
		// period window; the other metrics reflect all-time user state.
		cursor, err := db.GetCollection(db.UserStatsCollection).Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Failed to fetch watch stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
			return
		}
		defer cursor.Close(ctx)

		var stats []models.UserWatchStats
		if err := cursor.All(ctx, &stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard data"})
			return
		}

		for _, s := range stats {
			sources = append(sources, services.RankSource{
				UserID:     s.UserID,
				Value:      s.TotalTimeMs,
				LastActive: s.LastActive,
			})
		}
		windowMs = period.WindowMs()
	} else {
		cursor, err := db.GetCollection(db.UsersCollection).Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Failed to fetch users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
			return
		}
		defer cursor.Close(ctx)

		var users []models.User
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard data"})
			return
		}

		for _, user := range users {
			var value int64
			switch metric {
			case services.MetricPoints:
				value = user.Points
			case services.MetricFollowers:
				value = int64(len(user.Followers))
			case services.MetricMessages:
				value = user.Stats.MessagesSent
			}
			sources = append(sources, services.RankSource{UserID: user.ID.Hex(), Value: value})
		}
	}

	ranked := services.RankSnapshot(sources, windowMs, time.Now().UnixMilli(), limit)

	// Batch-enrich with one $in read instead of per-entry fetches
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.UserID
	}
	users, err := utils.FindUsersByHexIDs(ctx, ids)
	if err != nil {
		log.Printf("Failed to enrich leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}
	userByID := make(map[string]models.User, len(users))
	for _, u := range users {
		userByID[u.ID.Hex()] = u
	}

	// Entries without a backing user document are dropped; ranks are reassigned
	// after the drop so the output is always dense 1..n
	leaderboard := make([]LeaderboardEntry, 0, len(ranked))
	for _, r := range ranked {
		user, ok := userByID[r.UserID]
		if !ok {
			continue
		}
		leaderboard = append(leaderboard, LeaderboardEntry{
			Rank:       len(leaderboard) + 1,
			UserID:     r.UserID,
			Username:   user.Username,
			ProfilePic: user.ProfilePic,
			Verified:   user.Verified,
			Value:      r.Value,
			Badge:      user.Badge,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": leaderboard,
		"type":        metric,
		"period":      period,
	})
}
