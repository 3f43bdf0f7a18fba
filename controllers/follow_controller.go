package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"streamhub/db"
	"streamhub/models"
	"streamhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowRequest targets a user or a streamer channel
type FollowRequest struct {
	TargetID string `json:"targetId" binding:"required"`
	Type     string `json:"type" binding:"required"` // "user" or "streamer"
}

// FollowUser toggles follow state for a user or streamer
func FollowUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.TargetID == currentUserID.Hex() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	// Rate limiting (5 seconds between follow actions)
	if db.RedisClient != nil {
		rateKey := "follow:rate:" + currentUserID.Hex()
		exists, _ := db.RedisClient.Exists(c, rateKey).Result()
		if exists > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait 5 seconds before following again"})
			return
		}
		db.RedisClient.Set(c, rateKey, "1", 5*time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := utils.FindUserByID(ctx, currentUserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	users := db.GetCollection(db.UsersCollection)

	switch req.Type {
	case "user":
		targetID, err := primitive.ObjectIDFromHex(req.TargetID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID"})
			return
		}

		isFollowing := false
		for _, id := range user.Following {
			if id == req.TargetID {
				isFollowing = true
				break
			}
		}

		if isFollowing {
			// Unfollow: pull from both sides
			_, err = users.UpdateOne(ctx, bson.M{"_id": currentUserID},
				bson.M{"$pull": bson.M{"following": req.TargetID}})
			if err == nil {
				_, err = users.UpdateOne(ctx, bson.M{"_id": targetID},
					bson.M{"$pull": bson.M{"followers": currentUserID.Hex()}})
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"following": false})
			return
		}

		// Follow: addToSet keeps the lists duplicate-free under races
		_, err = users.UpdateOne(ctx, bson.M{"_id": currentUserID},
			bson.M{"$addToSet": bson.M{"following": req.TargetID}})
		if err == nil {
			_, err = users.UpdateOne(ctx, bson.M{"_id": targetID},
				bson.M{"$addToSet": bson.M{"followers": currentUserID.Hex()}})
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
			return
		}

		utils.PushNotification(ctx, models.Notification{
			UserID:  req.TargetID,
			Type:    "new_follower",
			Title:   "New Follower",
			Message: fmt.Sprintf("%s started following you!", user.Username),
			Link:    "/user/" + user.Username,
		})

		c.JSON(http.StatusOK, gin.H{"following": true})

	case "streamer":
		isFollowing := false
		for _, id := range user.FollowingStreamers {
			if id == req.TargetID {
				isFollowing = true
				break
			}
		}

		op := "$addToSet"
		if isFollowing {
			op = "$pull"
		}
		_, err = users.UpdateOne(ctx, bson.M{"_id": currentUserID},
			bson.M{op: bson.M{"followingStreamers": req.TargetID}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update streamer follow"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"following": !isFollowing})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
	}
}

// GetFollowData lists a user's following, followers, or followed streamers
func GetFollowData(c *gin.Context) {
	userIDParam := c.Query("userId")
	if userIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	targetID, err := primitive.ObjectIDFromHex(userIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := utils.FindUserByID(ctx, targetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	switch c.Query("type") {
	case "following":
		c.JSON(http.StatusOK, gin.H{"users": summarizeUsers(ctx, user.Following)})
	case "followers":
		c.JSON(http.StatusOK, gin.H{"users": summarizeUsers(ctx, user.Followers)})
	case "streamers":
		c.JSON(http.StatusOK, gin.H{"streamers": user.FollowingStreamers})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
	}
}

// UserSummary is the display subset of a user document
type UserSummary struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profilePic,omitempty"`
	Verified   bool   `json:"verified"`
}

// summarizeUsers batch-loads display fields for a list of hex ids, dropping any
// that no longer resolve to a user document
func summarizeUsers(ctx context.Context, hexIDs []string) []UserSummary {
	summaries := make([]UserSummary, 0, len(hexIDs))

	users, err := utils.FindUsersByHexIDs(ctx, hexIDs)
	if err != nil {
		return summaries
	}
	userByID := make(map[string]models.User, len(users))
	for _, u := range users {
		userByID[u.ID.Hex()] = u
	}

	// Preserve the stored list order
	for _, id := range hexIDs {
		u, ok := userByID[id]
		if !ok {
			continue
		}
		summaries = append(summaries, UserSummary{
			ID:         id,
			Username:   u.Username,
			ProfilePic: u.ProfilePic,
			Verified:   u.Verified,
		})
	}
	return summaries
}
