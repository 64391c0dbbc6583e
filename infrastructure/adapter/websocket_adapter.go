// infrastructure/adapter/websocket_adapter.go
package adapter

import (
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/port"
	"github.com/reiggrau/tribes-backend/interfaces/websocket"
)

// WebSocketAdapter ใช้งานร่วมกับ WebSocketHub และ implements interface WebSocketPort
type WebSocketAdapter struct {
	hub *websocket.Hub
}

// NewWebSocketAdapter สร้าง WebSocketAdapter ตัวใหม่
func NewWebSocketAdapter(hub *websocket.Hub) port.WebSocketPort {
	return &WebSocketAdapter{
		hub: hub,
	}
}

// BroadcastToUser ส่งข้อความไปยังผู้ใช้คนใดคนหนึ่ง
func (a *WebSocketAdapter) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {
	a.hub.BroadcastToUser(userID, websocket.MessageType(messageType), data)
}

// BroadcastToAll ส่งข้อความไปยังทุก connection ที่ลงทะเบียนอยู่
func (a *WebSocketAdapter) BroadcastToAll(messageType string, data interface{}) {
	a.hub.BroadcastToAll(websocket.MessageType(messageType), data)
}

// IsUserConnected ตรวจสอบว่าผู้ใช้มี connection ที่ลงทะเบียนอยู่หรือไม่
func (a *WebSocketAdapter) IsUserConnected(userID uuid.UUID) bool {
	return a.hub.IsUserConnected(userID)
}
