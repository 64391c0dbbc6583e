// domain/repository/friend_request_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/models"
)

// FriendRequestRepository จัดการความสัมพันธ์ระหว่างผู้ใช้ในฐานข้อมูล
type FriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error

	// FindActiveByPair หา record ที่ active (pending/accepted) ของคู่ผู้ใช้
	// คู่ผู้ใช้ไม่สนทิศทาง มี record แบบนี้ได้มากสุดหนึ่งรายการ
	FindActiveByPair(ctx context.Context, a, b uuid.UUID) (*models.FriendRequest, error)

	FindPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*models.FriendRequest, error)

	// FindFriendIDs คืน id ของเพื่อนที่ accepted แล้วเท่านั้น
	FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// FindFriends คืนข้อมูลเพื่อนที่ accepted พร้อม online flag (join กับ users)
	FindFriends(ctx context.Context, userID uuid.UUID) ([]*models.User, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
