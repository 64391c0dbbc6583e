// interfaces/websocket/broadcast.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// broadcastMessage sends a message to the specified clients
func (h *Hub) broadcastMessage(msg *BroadcastMessage) {
	data, err := json.Marshal(WSResponse{
		Type:      msg.Type,
		Data:      msg.Data,
		Timestamp: time.Now(),
		Success:   true,
	})
	if err != nil {
		return
	}

	if msg.Global {
		h.sendToAll(data)
		return
	}

	for _, userID := range msg.UserIDs {
		h.sendToUser(userID, data)
	}
}

// sendToUser sends raw data to the user's connection, if any
func (h *Hub) sendToUser(userID uuid.UUID, data []byte) {
	h.clientsMux.RLock()
	client, ok := h.clients[userID]
	h.clientsMux.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- data:
	default:
		// Client's send channel is full, drop the connection
		go func() {
			h.unregister <- client
		}()
	}
}

// sendToAll sends raw data to every registered connection
func (h *Hub) sendToAll(data []byte) {
	h.clientsMux.RLock()
	clientsCopy := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.clientsMux.RUnlock()

	for _, client := range clientsCopy {
		select {
		case client.Send <- data:
		default:
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

// sendToClient sends a response to a specific client
func (h *Hub) sendToClient(client *Client, response WSResponse) {
	// Recover from panic if channel is closed
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in sendToClient for user %s: %v", client.UserID, r)
		}
	}()

	data, err := json.Marshal(response)
	if err != nil {
		return
	}

	select {
	case client.Send <- data:
	default:
		log.Printf("Failed to send to user %s (channel full or closed)", client.UserID)
	}
}

// NotifyBroadcast ส่งข้อความผ่าน broadcast channel
func (h *Hub) NotifyBroadcast(msg *BroadcastMessage) {
	if h == nil || msg == nil {
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		log.Printf("Broadcast channel full, dropping message type %s", msg.Type)
	}
}

// BroadcastToUser ส่งข้อความไปยังผู้ใช้คนเดียว
func (h *Hub) BroadcastToUser(userID uuid.UUID, msgType MessageType, data interface{}) {
	h.NotifyBroadcast(&BroadcastMessage{
		Type:    msgType,
		Data:    data,
		UserIDs: []uuid.UUID{userID},
	})
}

// BroadcastToUsers ส่งข้อความไปยังผู้ใช้หลายคน
func (h *Hub) BroadcastToUsers(userIDs []uuid.UUID, msgType MessageType, data interface{}) {
	h.NotifyBroadcast(&BroadcastMessage{
		Type:    msgType,
		Data:    data,
		UserIDs: userIDs,
	})
}

// BroadcastToAll ส่งข้อความไปยังทุก connection ที่ลงทะเบียนอยู่
func (h *Hub) BroadcastToAll(msgType MessageType, data interface{}) {
	h.NotifyBroadcast(&BroadcastMessage{
		Type:   msgType,
		Data:   data,
		Global: true,
	})
}
