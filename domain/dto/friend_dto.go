// domain/dto/friend_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// FriendDTO - เพื่อนหรือคำขอเป็นเพื่อน พร้อมสถานะออนไลน์
type FriendDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Picture  string    `json:"picture,omitempty"`
	Status   string    `json:"status"` // pending, accepted
	Online   bool      `json:"online"`
}

// FriendshipStatusDTO - ผลลัพธ์ของการตรวจสอบความสัมพันธ์ระหว่างผู้ใช้สองคน
type FriendshipStatusDTO struct {
	Status    string     `json:"status"` // none, pending, accepted, self
	Direction string     `json:"direction,omitempty"` // sent, received
	RequestID *uuid.UUID `json:"request_id,omitempty"`
}

// UserDTO - ข้อมูลผู้ใช้สำหรับ response (ไม่มี password hash)
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	Online    bool      `json:"online"`
	CreatedAt time.Time `json:"created_at"`
}
