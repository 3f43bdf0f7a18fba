package websocket

import (
	"log"
	"sync"

	"streamhub/models"

	"github.com/gorilla/websocket"
)

// Client represents a connection subscribed to live platform events
type Client struct {
	Conn    *websocket.Conn
	UserID  string
	writeMu sync.Mutex
}

// SafeWriteJSON serializes writes to the client's connection
func (c *Client) SafeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Global hub for broadcasting events to all connected clients
var (
	clients   = make(map[*Client]bool)
	clientsMu sync.RWMutex
)

// RegisterClient adds a client to the hub
func RegisterClient(client *Client) {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	clients[client] = true
	log.Printf("Event client registered. Total clients: %d", len(clients))
}

// UnregisterClient removes a client and closes its connection
func UnregisterClient(client *Client) {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	delete(clients, client)
	client.Conn.Close()
	log.Printf("Event client unregistered. Total clients: %d", len(clients))
}

// BroadcastEvent pushes a gamification event to every connected client
func BroadcastEvent(event models.GamificationEvent) {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	message := map[string]interface{}{
		"type":      event.Type,
		"userId":    event.UserID,
		"timestamp": event.Timestamp,
	}

	if event.AchievementID != "" {
		message["achievementId"] = event.AchievementID
	}
	if event.Points != 0 {
		message["points"] = event.Points
	}
	if event.Streak != 0 {
		message["streak"] = event.Streak
	}

	for client := range clients {
		if err := client.SafeWriteJSON(message); err != nil {
			log.Printf("Error broadcasting event to client: %v", err)
			// Remove client if write fails
			go UnregisterClient(client)
		}
	}
}

// ClientCount returns the number of connected clients
func ClientCount() int {
	clientsMu.RLock()
	defer clientsMu.RUnlock()
	return len(clients)
}
