// domain/models/friend_request.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// สถานะของความสัมพันธ์ระหว่างผู้ใช้สองคน
// มี record ที่ active (pending/accepted) ได้แค่หนึ่งรายการต่อคู่ผู้ใช้
// record ที่ถูก cancel จะไม่ถูกลบ เพื่อเก็บประวัติไว้
const (
	FriendStatusPending   = "pending"
	FriendStatusAccepted  = "accepted"
	FriendStatusCancelled = "cancelled"
)

// FriendRequest - คำขอเป็นเพื่อนและความสัมพันธ์ระหว่างผู้ใช้
type FriendRequest struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SenderID   uuid.UUID `json:"sender_id" gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `json:"receiver_id" gorm:"type:uuid;not null;index"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"` // pending, accepted, cancelled
	CreatedAt  time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Sender   *User `json:"sender,omitempty" gorm:"foreignkey:SenderID"`
	Receiver *User `json:"receiver,omitempty" gorm:"foreignkey:ReceiverID"`
}

// TableName - ระบุชื่อตารางใน database
func (FriendRequest) TableName() string {
	return "friend_requests"
}

// IsActive รายการ pending หรือ accepted ถือว่ายัง active อยู่
func (r *FriendRequest) IsActive() bool {
	return r.Status == FriendStatusPending || r.Status == FriendStatusAccepted
}
