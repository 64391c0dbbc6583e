// domain/repository/message_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
)

// MessageRepository จัดการข้อความแชทในฐานข้อมูล
type MessageRepository interface {
	// Create บันทึกข้อความใหม่ server เป็นคนกำหนด id และ created_at
	Create(ctx context.Context, message *models.Message) error

	// FindByIDWithSender โหลดข้อความพร้อม username/picture ของผู้ส่ง
	// เรียกหลัง Create เพื่อให้ได้ row ที่ server ประทับค่าแล้วก่อน fan out
	FindByIDWithSender(ctx context.Context, id uuid.UUID) (*dto.MessageDTO, error)

	// FindBetween ดึงข้อความระหว่างผู้ใช้สองคน เรียงเก่าไปใหม่
	FindBetween(ctx context.Context, a, b uuid.UUID, limit int) ([]*dto.MessageDTO, error)

	// FindGlobal ดึงข้อความ global chat (receiver = uuid.Nil) เรียงเก่าไปใหม่
	FindGlobal(ctx context.Context, limit int) ([]*dto.MessageDTO, error)
}
