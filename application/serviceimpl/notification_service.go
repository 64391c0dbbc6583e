// application/serviceimpl/notification_service.go
package serviceimpl

import (
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/port"
	"github.com/reiggrau/tribes-backend/domain/service"
)

// notificationService คือ fanout dispatcher ฝั่ง service layer
// ตัดสินใจว่า event ไปถึงใครบ้าง แล้วส่งผ่าน WebSocketPort
// การ push เป็น best effort ปลายทางที่ไม่ออนไลน์จะถูกข้ามเงียบๆ
type notificationService struct {
	wsPort port.WebSocketPort
}

func NewNotificationService(wsPort port.WebSocketPort) service.NotificationService {
	return &notificationService{wsPort: wsPort}
}

// NotifyFriendOnline แจ้งเฉพาะเพื่อนที่มี connection อยู่ คนอื่นข้าม
func (s *notificationService) NotifyFriendOnline(userID uuid.UUID, friendIDs []uuid.UUID) {
	for _, friendID := range friendIDs {
		s.wsPort.BroadcastToUser(friendID, "friendOnline", userID)
	}
}

func (s *notificationService) NotifyFriendOffline(userID uuid.UUID, friendIDs []uuid.UUID) {
	for _, friendID := range friendIDs {
		s.wsPort.BroadcastToUser(friendID, "friendOffline", userID)
	}
}

// NotifyNewMessage global chat ส่งถึงทุกคนรวมผู้ส่ง
// direct message ส่งถึงผู้ส่ง (echo) และผู้รับเท่านั้น
func (s *notificationService) NotifyNewMessage(message *dto.MessageDTO) {
	if message.ReceiverID == uuid.Nil {
		s.wsPort.BroadcastToAll("newMessage", message)
		return
	}

	s.wsPort.BroadcastToUser(message.SenderID, "newMessage", message)
	if message.ReceiverID != message.SenderID {
		s.wsPort.BroadcastToUser(message.ReceiverID, "newMessage", message)
	}
}

// NotifyRequestUpdate ให้ client ของ receiver ไป refresh รายการคำขอ
func (s *notificationService) NotifyRequestUpdate(userID uuid.UUID) {
	if !s.wsPort.IsUserConnected(userID) {
		return
	}
	s.wsPort.BroadcastToUser(userID, "newRequestUpdate", true)
}
