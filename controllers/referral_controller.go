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
	"go.mongodb.org/mongo-driver/mongo"
)

// Referral reward amounts
const (
	referrerReward = 100 // Points for the referrer
	refereeReward  = 50  // Points for the new user
)

// ApplyReferralRequest carries the code a new user redeems
type ApplyReferralRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetReferral returns the caller's referral state, creating a code on first use
func GetReferral(c *gin.Context) {
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

	referral := user.Referral
	if referral.Code == "" {
		referral = models.Referral{
			Code:          utils.GenerateReferralCode(),
			ReferredUsers: []string{},
		}
		_, err := db.GetCollection(db.UsersCollection).UpdateOne(ctx,
			bson.M{"_id": currentUserID},
			bson.M{"$set": bson.M{"referral": referral}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referral code"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"code":          referral.Code,
		"referredUsers": referral.ReferredUsers,
		"totalRewards":  referral.TotalRewards,
	})
}

// ApplyReferral redeems a referral code for the caller and credits both sides
func ApplyReferral(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	var req ApplyReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)

	var referrer models.User
	err := users.FindOne(ctx, bson.M{"referral.code": req.Code}).Decode(&referrer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid referral code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up referral code"})
		return
	}

	if referrer.ID == currentUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot use your own referral code"})
		return
	}

	currentUser, err := utils.FindUserByID(ctx, currentUserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if currentUser.Referral.ReferredBy != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already used a referral code"})
		return
	}

	// Pin referredBy to unset so a concurrent redemption cannot apply twice
	result, err := users.UpdateOne(ctx,
		bson.M{"_id": currentUserID, "referral.referredBy": bson.M{"$in": bson.A{nil, ""}}},
		bson.M{
			"$set": bson.M{"referral.referredBy": referrer.ID.Hex()},
			"$inc": bson.M{
				"points":                  int64(refereeReward),
				"stats.totalPointsEarned": int64(refereeReward),
			},
		})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply referral"})
		return
	}
	if result.ModifiedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already used a referral code"})
		return
	}

	_, err = users.UpdateOne(ctx,
		bson.M{"_id": referrer.ID},
		bson.M{
			"$addToSet": bson.M{"referral.referredUsers": currentUserID.Hex()},
			"$inc": bson.M{
				"points":                  int64(referrerReward),
				"referral.totalRewards":   int64(referrerReward),
				"stats.totalPointsEarned": int64(referrerReward),
			},
		})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit referrer"})
		return
	}

	utils.PushNotification(ctx, models.Notification{
		UserID:  referrer.ID.Hex(),
		Type:    "referral",
		Title:   "New Referral! 🎁",
		Message: fmt.Sprintf("%s joined using your referral code! You earned %d points!", currentUser.Username, referrerReward),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"reward":           refereeReward,
		"referrerUsername": referrer.Username,
	})
}
