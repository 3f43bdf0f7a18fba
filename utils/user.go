package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"streamhub/db"
	"streamhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetUserIDFromEmail resolves a user's ObjectID from their email
func GetUserIDFromEmail(ctx context.Context, email string) (primitive.ObjectID, error) {
	var user struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to find user for %s: %w", email, err)
	}
	return user.ID, nil
}

// FindUserByID fetches a full user document by hex id
func FindUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUsersByHexIDs batch-fetches user documents for a list of hex ids. Invalid
// ids and missing documents are skipped.
func FindUsersByHexIDs(ctx context.Context, hexIDs []string) ([]models.User, error) {
	var objectIDs []primitive.ObjectID
	for _, hex := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, id)
	}

	if len(objectIDs) == 0 {
		return nil, nil
	}

	cursor, err := db.GetCollection(db.UsersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

const referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferralCode returns a 6-character uppercase alphanumeric code
func GenerateReferralCode() string {
	b := make([]byte, 6)
	rand.Read(b)
	var sb strings.Builder
	for _, c := range b {
		sb.WriteByte(referralAlphabet[int(c)%len(referralAlphabet)])
	}
	return sb.String()
}

// EnsureUserDocument creates the Mongo user document for an email on first login.
// Existing documents are left untouched.
func EnsureUserDocument(ctx context.Context, email string) (*models.User, error) {
	collection := db.GetCollection(db.UsersCollection)

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		return &user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	user = models.User{
		ID:                 primitive.NewObjectID(),
		Email:              email,
		Username:           ExtractNameFromEmail(email),
		Achievements:       []models.UserAchievement{},
		Followers:          []string{},
		Following:          []string{},
		FollowingStreamers: []string{},
		BlockedUsers:       []string{},
		Referral:           models.Referral{ReferredUsers: []string{}},
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if _, err := collection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user document: %w", err)
	}
	return &user, nil
}
