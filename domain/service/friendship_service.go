// domain/service/friendship_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
)

// FriendshipService คือ state machine ของความสัมพันธ์ระหว่างผู้ใช้
// none -> pending -> accepted/cancelled
type FriendshipService interface {
	// SendRequest สร้างคำขอเป็นเพื่อน ทำได้เฉพาะตอนที่ไม่มีความสัมพันธ์ active
	SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*dto.FriendshipStatusDTO, error)

	// Accept ยอมรับคำขอ ทำได้เฉพาะ receiver ของคำขอที่ pending อยู่
	Accept(ctx context.Context, receiverID, senderID uuid.UUID) error

	// Cancel ยกเลิกคำขอ pending หรือเลิกเป็นเพื่อน ฝ่ายไหนเรียกก็ได้
	// idempotent ถ้าไม่มีความสัมพันธ์ active ถือว่าสำเร็จเฉยๆ
	Cancel(ctx context.Context, userID, otherID uuid.UUID) error

	// Status ตรวจสอบความสัมพันธ์ปัจจุบันของคู่ผู้ใช้
	Status(ctx context.Context, userID, otherID uuid.UUID) (*dto.FriendshipStatusDTO, error)

	// GetFriendIDs คืน id เพื่อนที่ accepted เท่านั้น ใช้ตอน fan out
	GetFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	GetFriends(ctx context.Context, userID uuid.UUID) ([]*dto.FriendDTO, error)
	GetPendingRequests(ctx context.Context, userID uuid.UUID) ([]*dto.FriendDTO, error)
}
