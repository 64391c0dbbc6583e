// domain/models/message.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// GlobalChatID คือ receiver สำหรับข้อความ global chat (broadcast ถึงทุกคนที่ออนไลน์)
var GlobalChatID = uuid.Nil

// Message - ข้อความแชท (direct หรือ global)
// ข้อความสร้างแล้วแก้ไขไม่ได้ จะถูกลบเฉพาะตอนลบบัญชีผู้ใช้เท่านั้น
type Message struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SenderID   uuid.UUID `json:"sender_id" gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `json:"receiver_id" gorm:"type:uuid;not null;index"` // uuid.Nil = global chat
	Text       string    `json:"text" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Sender *User `json:"sender,omitempty" gorm:"foreignkey:SenderID"`
}

// TableName - ระบุชื่อตารางใน database
func (Message) TableName() string {
	return "messages"
}

// IsGlobal ข้อความนี้ส่งเข้า global chat หรือไม่
func (m *Message) IsGlobal() bool {
	return m.ReceiverID == GlobalChatID
}
