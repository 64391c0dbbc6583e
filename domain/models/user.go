// domain/models/user.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// User - ผู้ใช้ในระบบ
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username     string    `json:"username" gorm:"type:varchar(50);not null;unique"`
	Email        string    `json:"email,omitempty" gorm:"type:varchar(255);not null;unique"`
	PasswordHash string    `json:"-" gorm:"type:text"` // ไม่ส่งกลับในการ response JSON
	Bio          string    `json:"bio,omitempty" gorm:"type:text"`
	Picture      string    `json:"picture,omitempty" gorm:"type:text"`
	Online       bool      `json:"online" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	SentRequests     []*FriendRequest `json:"sent_requests,omitempty" gorm:"foreignkey:SenderID"`
	ReceivedRequests []*FriendRequest `json:"received_requests,omitempty" gorm:"foreignkey:ReceiverID"`
	SentMessages     []*Message       `json:"sent_messages,omitempty" gorm:"foreignkey:SenderID"`
}

// TableName - ระบุชื่อตารางใน database
func (User) TableName() string {
	return "users"
}
