package controllers

import (
	"context"
	"net/http"
	"time"

	"streamhub/db"
	"streamhub/models"
	"streamhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ModerationRequest covers block, unblock, and report actions
type ModerationRequest struct {
	Action       string `json:"action" binding:"required"` // "block", "unblock", "report"
	TargetUserID string `json:"targetUserId" binding:"required"`
	Reason       string `json:"reason,omitempty"`
}

// HandleReportRequest is an admin decision on a queued report
type HandleReportRequest struct {
	ReportID string `json:"reportId" binding:"required"`
	Action   string `json:"action" binding:"required"` // "approve" or "reject"
	Response string `json:"response,omitempty"`
}

// ModerateUser blocks/unblocks a target user or files a report against them
func ModerateUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	currentUserID := userID.(primitive.ObjectID)

	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := utils.FindUserByID(ctx, currentUserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	users := db.GetCollection(db.UsersCollection)

	switch req.Action {
	case "block":
		for _, id := range user.BlockedUsers {
			if id == req.TargetUserID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already blocked"})
				return
			}
		}
		_, err := users.UpdateOne(ctx, bson.M{"_id": currentUserID},
			bson.M{"$addToSet": bson.M{"blockedUsers": req.TargetUserID}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "blocked": true})

	case "unblock":
		_, err := users.UpdateOne(ctx, bson.M{"_id": currentUserID},
			bson.M{"$pull": bson.M{"blockedUsers": req.TargetUserID}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unblock user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "blocked": false})

	case "report":
		report := models.Report{
			ID:               primitive.NewObjectID(),
			ReporterID:       currentUserID.Hex(),
			ReporterUsername: user.Username,
			TargetUserID:     req.TargetUserID,
			Reason:           req.Reason,
			Type:             "user",
			Status:           "pending",
			CreatedAt:        time.Now().UnixMilli(),
		}
		if _, err := db.GetCollection(db.ReportsCollection).InsertOne(ctx, report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file report"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "reported": true})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

// GetBlockedUsers returns display details for the caller's block list
func GetBlockedUsers(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"blockedUsers": summarizeUsers(ctx, user.BlockedUsers)})
}

// requireAdmin loads the caller and rejects non-admins. Returns nil after it has
// already written the error response.
func requireAdmin(c *gin.Context, ctx context.Context) *models.User {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil
	}

	user, err := utils.FindUserByID(ctx, userID.(primitive.ObjectID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil
	}

	if user.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return nil
	}
	return user
}

// GetModerationQueue lists reports by status for admins
func GetModerationQueue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if requireAdmin(c, ctx) == nil {
		return
	}

	status := c.DefaultQuery("status", "pending")

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(50)
	cursor, err := db.GetCollection(db.ReportsCollection).Find(ctx, bson.M{"status": status}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// HandleReport records an admin decision and notifies the reporter
func HandleReport(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin := requireAdmin(c, ctx)
	if admin == nil {
		return
	}

	var req HandleReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.Action != "approve" && req.Action != "reject" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}

	reportID, err := primitive.ObjectIDFromHex(req.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	reports := db.GetCollection(db.ReportsCollection)
	var report models.Report
	if err := reports.FindOne(ctx, bson.M{"_id": reportID}).Decode(&report); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	status := "approved"
	title := "Report Approved"
	message := "Your report has been reviewed and action has been taken."
	if req.Action == "reject" {
		status = "rejected"
		title = "Report Reviewed"
		message = "Your report has been reviewed."
		if req.Response != "" {
			message = req.Response
		}
	}

	_, err = reports.UpdateOne(ctx, bson.M{"_id": reportID}, bson.M{"$set": bson.M{
		"status":    status,
		"handledBy": admin.ID.Hex(),
		"handledAt": time.Now().UnixMilli(),
		"response":  req.Response,
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	utils.PushNotification(ctx, models.Notification{
		UserID:  report.ReporterID,
		Type:    "moderation",
		Title:   title,
		Message: message,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
