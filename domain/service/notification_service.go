// domain/service/notification_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
)

// NotificationService ส่ง event แบบ real-time ไปยัง client ที่เชื่อมต่ออยู่
// ทุกเมธอดเป็น best effort ถ้าเป้าหมายไม่ออนไลน์จะข้ามไปเฉยๆ ไม่มี error
type NotificationService interface {
	// NotifyFriendOnline แจ้งเพื่อนทุกคนที่ออนไลน์ว่า userID เพิ่งออนไลน์
	NotifyFriendOnline(userID uuid.UUID, friendIDs []uuid.UUID)

	// NotifyFriendOffline แจ้งเพื่อนทุกคนที่ออนไลน์ว่า userID ออฟไลน์แล้ว
	NotifyFriendOffline(userID uuid.UUID, friendIDs []uuid.UUID)

	// NotifyNewMessage ส่งข้อความใหม่ global -> ทุกคน, direct -> ผู้ส่งและผู้รับ
	NotifyNewMessage(message *dto.MessageDTO)

	// NotifyRequestUpdate แจ้ง receiver ให้ refresh รายการคำขอเป็นเพื่อน
	NotifyRequestUpdate(userID uuid.UUID)
}
