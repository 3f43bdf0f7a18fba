package controllers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"streamhub/db"
	"streamhub/models"
	"streamhub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScoredClip is a clip with its computed trending score
type ScoredClip struct {
	models.Clip
	Score int64 `json:"score"`
}

// ScoredVod is a VOD with its computed trending score
type ScoredVod struct {
	models.Vod
	Score int64 `json:"score"`
}

// GetTrending ranks streams, clips, or VODs by recent engagement. Public.
func GetTrending(c *gin.Context) {
	contentType := c.DefaultQuery("type", "streams")
	periodStr := c.DefaultQuery("period", "daily")

	period, err := services.ParsePeriod(periodStr)
	if err != nil || period == services.PeriodAllTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trending period"})
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	now := time.Now().UnixMilli()
	cutoff := now - period.WindowMs()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch contentType {
	case "streams":
		cursor, err := db.GetCollection(db.UserStatsCollection).Find(ctx, bson.M{"lastActive": bson.M{"$gt": cutoff}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch stats"})
			return
		}
		defer cursor.Close(ctx)

		var stats []models.UserWatchStats
		if err := cursor.All(ctx, &stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode watch stats"})
			return
		}

		trending := services.RankStreams(stats, cutoff, limit)
		c.JSON(http.StatusOK, gin.H{"trending": trending, "type": contentType, "period": period})

	case "clips":
		// Fetch a bounded recent window, score in memory
		findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(100)
		cursor, err := db.GetCollection(db.ClipsCollection).Find(ctx, bson.M{"createdAt": bson.M{"$gt": cutoff}}, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clips"})
			return
		}
		defer cursor.Close(ctx)

		var clips []models.Clip
		if err := cursor.All(ctx, &clips); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode clips"})
			return
		}

		scored := make([]ScoredClip, 0, len(clips))
		for _, clip := range clips {
			scored = append(scored, ScoredClip{Clip: clip, Score: services.ClipScore(clip)})
		}
		sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
		if len(scored) > limit {
			scored = scored[:limit]
		}

		c.JSON(http.StatusOK, gin.H{"trending": scored, "type": contentType, "period": period})

	case "vods":
		findOptions := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}}).SetLimit(100)
		cursor, err := db.GetCollection(db.VodsCollection).Find(ctx, bson.M{"recordedAt": bson.M{"$gt": cutoff}}, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch VODs"})
			return
		}
		defer cursor.Close(ctx)

		var vods []models.Vod
		if err := cursor.All(ctx, &vods); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode VODs"})
			return
		}

		scored := make([]ScoredVod, 0, len(vods))
		for _, vod := range vods {
			scored = append(scored, ScoredVod{Vod: vod, Score: vod.Views})
		}
		sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
		if len(scored) > limit {
			scored = scored[:limit]
		}

		c.JSON(http.StatusOK, gin.H{"trending": scored, "type": contentType, "period": period})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
	}
}
