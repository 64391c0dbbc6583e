// domain/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// MessageDTO - ข้อความพร้อมข้อมูลผู้ส่งสำหรับส่งให้ client
// shape เดียวกันทั้งใน REST response และ newMessage event
type MessageDTO struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"` // uuid.Nil = global chat
	Username   string    `json:"username"`
	Picture    string    `json:"picture,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
