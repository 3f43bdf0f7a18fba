package websocket

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"streamhub/db"
	"streamhub/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// The websocket package verifies tokens itself so the HTTP-side auth helpers do
// not need to import it back for broadcasting.
var jwtSecret string

// SetJWTSecret stores the signing secret used to authenticate upgrade requests
func SetJWTSecret(secret string) {
	jwtSecret = secret
}

// EventsHandler upgrades an authenticated connection and streams platform events
func EventsHandler(c *gin.Context) {
	// Token comes from the Authorization header or, for browser clients that
	// cannot set headers on WebSocket upgrades, the token query parameter
	var tokenString string
	if authz := c.GetHeader("Authorization"); authz != "" {
		parts := strings.Split(authz, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	if jwtSecret == "" {
		log.Printf("JWT secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}

	email, ok := claims["sub"].(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: missing email"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err = db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		Conn:   conn,
		UserID: user.ID.Hex(),
	}

	RegisterClient(client)
	defer UnregisterClient(client)

	client.SafeWriteJSON(map[string]interface{}{
		"type":   "connected",
		"userId": user.ID.Hex(),
	})

	// Keep connection alive; respond to pings until the client goes away
	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Event WebSocket error: %v", err)
			}
			break
		}

		if messageType == websocket.PingMessage {
			if err := conn.WriteMessage(websocket.PongMessage, nil); err != nil {
				log.Printf("Error writing pong: %v", err)
				break
			}
		}
	}
}
