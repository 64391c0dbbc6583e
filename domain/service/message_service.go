// domain/service/message_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
)

// MessageService จัดการการส่งและดึงข้อความแชท
type MessageService interface {
	// SendMessage บันทึกข้อความ โหลด row ที่ server ประทับค่าแล้ว และ fan out
	// receiver = uuid.Nil หมายถึง global chat ส่งถึงทุกคนที่ออนไลน์
	SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, text string) (*dto.MessageDTO, error)

	GetMessagesBetween(ctx context.Context, userID, otherID uuid.UUID, limit int) ([]*dto.MessageDTO, error)
	GetGlobalMessages(ctx context.Context, limit int) ([]*dto.MessageDTO, error)
}
