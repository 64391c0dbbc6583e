// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/service"
)

// Hub manages all WebSocket connections
// One connection per user: a newer login for the same user evicts the old one
type Hub struct {
	// Registered clients (userID -> client)
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	// Message handlers
	handlers map[string]MessageHandler

	// Core services
	friendshipService   service.FriendshipService
	presenceService     service.PresenceService
	messageService      service.MessageService
	notificationService service.NotificationService

	// Channels
	register   chan *Client
	unregister chan *Client
	broadcast  chan *BroadcastMessage

	// Statistics
	startTime       time.Time
	totalMessages   int64
	messagesSentMux sync.RWMutex
}

// Client represents a WebSocket connection
// สถานะถูกอ่าน/เขียนจากทั้ง readPump goroutine และ Run goroutine จึงต้องเป็น atomic
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub

	authenticated atomic.Bool
	lastPing      atomic.Int64 // unix nano ของ ping/pong ล่าสุด
}

// IsAuthenticated รายงานว่า connection นี้ login กับ hub แล้วหรือยัง
func (c *Client) IsAuthenticated() bool {
	return c.authenticated.Load()
}

// markAlive บันทึกว่าเพิ่งได้รับ ping/pong จาก client
func (c *Client) markAlive() {
	c.lastPing.Store(time.Now().UnixNano())
}

func (c *Client) lastPingTime() time.Time {
	return time.Unix(0, c.lastPing.Load())
}

// Message types
type MessageType string

const (
	// Connection management
	TypeConnect MessageType = "connect"
	TypeLogin   MessageType = "login"
	TypeLogout  MessageType = "logout"
	TypePing    MessageType = "ping"
	TypePong    MessageType = "pong"
	TypeError   MessageType = "error"

	// Chat messages
	TypeSendMessage MessageType = "sendMessage"
	TypeNewMessage  MessageType = "newMessage"

	// Presence events
	TypeFriendOnline  MessageType = "friendOnline"
	TypeFriendOffline MessageType = "friendOffline"

	// Friendship events
	TypeNewRequestUpdate MessageType = "newRequestUpdate"
)

// WebSocket message structure
type WSMessage struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"request_id,omitempty"`
}

// Response message structure
type WSResponse struct {
	Type      MessageType `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
}

// BroadcastMessage for sending messages to multiple clients
type BroadcastMessage struct {
	Type    MessageType
	Data    interface{}
	UserIDs []uuid.UUID
	Global  bool // ส่งถึงทุก connection ที่ลงทะเบียนอยู่
}

// MessageHandler interface for handling different message types
type MessageHandler interface {
	Handle(ctx context.Context, client *Client, data json.RawMessage) error
	ValidateData(data json.RawMessage) error
}

// NewHub creates a new WebSocket hub
func NewHub(
	friendshipService service.FriendshipService,
	presenceService service.PresenceService,
) *Hub {
	hub := &Hub{
		clients:           make(map[uuid.UUID]*Client),
		handlers:          make(map[string]MessageHandler),
		friendshipService: friendshipService,
		presenceService:   presenceService,
		register:          make(chan *Client),
		unregister:        make(chan *Client),
		broadcast:         make(chan *BroadcastMessage, 1000), // Buffer size
		startTime:         time.Now(),
	}

	hub.registerHandlers()

	log.Println("WebSocket Hub initialized")
	return hub
}

// SetNotificationService ถูกเรียกหลังสร้าง adapter เพราะ dependency วนกัน
// hub -> adapter -> notification service -> hub
func (h *Hub) SetNotificationService(notificationService service.NotificationService) {
	h.notificationService = notificationService
}

func (h *Hub) SetMessageService(messageService service.MessageService) {
	h.messageService = messageService
}

// Run starts the hub
func (h *Hub) Run(ctx context.Context) {
	log.Println("=== WebSocket Hub Run Started ===")
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("WebSocket Hub: context cancelled, shutting down")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-ticker.C:
			h.checkAliveClients()
		}
	}
}

// registerClient registers an authenticated client as the user's connection
// ถ้าผู้ใช้มี connection เดิมอยู่ connection เดิมจะถูกปิดทันที
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	previous, superseded := h.clients[client.UserID]
	h.clients[client.UserID] = client
	h.clientsMux.Unlock()

	client.authenticated.Store(true)

	if superseded && previous != client {
		log.Printf("WebSocket Hub: user %s reconnected, evicting old connection", client.UserID)
		h.evictClient(previous)
	}

	// การ reconnect ไม่นับเป็นการ online ใหม่ เพื่อนไม่ต้องรับ event ซ้ำ
	if !superseded {
		ctx := context.Background()

		if err := h.presenceService.SetUserOnline(ctx, client.UserID); err != nil {
			log.Printf("WebSocket Hub: set user %s online: %v", client.UserID, err)
		}

		friendIDs, err := h.friendshipService.GetFriendIDs(ctx, client.UserID)
		if err != nil {
			log.Printf("WebSocket Hub: load friends of %s: %v", client.UserID, err)
			friendIDs = nil
		}

		// แจ้งเพื่อนที่ออนไลน์ว่าเราเพิ่งเข้ามา
		if h.notificationService != nil {
			h.notificationService.NotifyFriendOnline(client.UserID, friendIDs)
		}

		// ส่งสถานะเพื่อนที่ออนไลน์อยู่แล้วกลับไปให้ client ใหม่
		for _, friendID := range friendIDs {
			if h.IsUserConnected(friendID) {
				h.sendToClient(client, WSResponse{
					Type:      TypeFriendOnline,
					Data:      friendID,
					Timestamp: time.Now(),
					Success:   true,
				})
			}
		}
	}

	h.sendToClient(client, WSResponse{
		Type: TypeLogin,
		Data: map[string]interface{}{
			"user_id": client.UserID.String(),
		},
		Timestamp: time.Now(),
		Success:   true,
	})
}

// evictClient ปิด connection ที่ถูกแทนที่ ไม่มี offline fanout
// เพราะผู้ใช้ยังออนไลน์อยู่บน connection ใหม่
func (h *Hub) evictClient(client *Client) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WebSocket Hub: recovered while evicting client of %s: %v", client.UserID, r)
		}
	}()

	client.authenticated.Store(false)
	close(client.Send)
}

// unregisterClient removes the client and, if it was the user's current
// connection, marks the user offline and notifies online friends
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	current, ok := h.clients[client.UserID]
	isCurrent := ok && current == client
	if isCurrent {
		delete(h.clients, client.UserID)
	}
	h.clientsMux.Unlock()

	// connection ที่ถูก evict ไปแล้วจะเข้ามาทางนี้ตอน readPump จบ
	// Send channel ถูกปิดไปแล้ว ไม่ต้องทำอะไรเพิ่ม
	if !isCurrent {
		return
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("WebSocket Hub: recovered closing send channel of %s: %v", client.UserID, r)
			}
		}()
		close(client.Send)
	}()

	if !client.authenticated.Swap(false) {
		return
	}

	ctx := context.Background()

	if err := h.presenceService.SetUserOffline(ctx, client.UserID); err != nil {
		log.Printf("WebSocket Hub: set user %s offline: %v", client.UserID, err)
	}

	friendIDs, err := h.friendshipService.GetFriendIDs(ctx, client.UserID)
	if err != nil {
		log.Printf("WebSocket Hub: load friends of %s: %v", client.UserID, err)
		return
	}

	if h.notificationService != nil {
		h.notificationService.NotifyFriendOffline(client.UserID, friendIDs)
	}
}

// checkAliveClients checks and removes dead connections
// ทำงานบน Run goroutine อยู่แล้ว จึงเรียก unregisterClient ตรงๆ
// ห้ามส่งเข้า h.unregister เพราะ Run เป็นผู้รับฝั่งเดียวของ channel นั้น
func (h *Hub) checkAliveClients() {
	h.clientsMux.RLock()
	clientsCopy := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.clientsMux.RUnlock()

	for _, client := range clientsCopy {
		if time.Since(client.lastPingTime()) > 90*time.Second {
			log.Printf("WebSocket Hub: client of %s timed out, removing", client.UserID)
			h.unregisterClient(client)
		}
	}
}

// IsUserConnected ตรวจสอบว่าผู้ใช้มี connection ที่ลงทะเบียนอยู่หรือไม่
func (h *Hub) IsUserConnected(userID uuid.UUID) bool {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	_, ok := h.clients[userID]
	return ok
}

// IncrementMessageCount increments total message count (thread-safe)
func (h *Hub) IncrementMessageCount() {
	h.messagesSentMux.Lock()
	h.totalMessages++
	h.messagesSentMux.Unlock()
}

// GetStats returns WebSocket statistics
func (h *Hub) GetStats() map[string]interface{} {
	h.clientsMux.RLock()
	totalClients := len(h.clients)
	h.clientsMux.RUnlock()

	h.messagesSentMux.RLock()
	messages := h.totalMessages
	h.messagesSentMux.RUnlock()

	return map[string]interface{}{
		"connected_users": totalClients,
		"total_messages":  messages,
		"uptime":          time.Since(h.startTime).String(),
		"started_at":      h.startTime,
	}
}
