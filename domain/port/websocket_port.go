// domain/port/websocket_port.go
package port

import "github.com/google/uuid"

// WebSocketPort เป็น interface สำหรับส่งข้อมูลผ่าน WebSocket
// service layer ใช้ port นี้แทนการเรียก hub ตรงๆ
type WebSocketPort interface {
	// BroadcastToUser ส่ง event ไปยังผู้ใช้คนเดียว ถ้าไม่ออนไลน์จะถูกข้าม
	BroadcastToUser(userID uuid.UUID, messageType string, data interface{})

	// BroadcastToAll ส่ง event ไปยังทุก connection ที่ลงทะเบียนอยู่
	BroadcastToAll(messageType string, data interface{})

	// IsUserConnected ตรวจสอบว่าผู้ใช้มี connection ที่ลงทะเบียนอยู่หรือไม่
	IsUserConnected(userID uuid.UUID) bool
}
