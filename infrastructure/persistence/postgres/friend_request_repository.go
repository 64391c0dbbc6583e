// infrastructure/persistence/postgres/friend_request_repository.go
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"gorm.io/gorm"
)

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) repository.FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	if request.UpdatedAt.IsZero() {
		request.UpdatedAt = now
	}

	return r.db.WithContext(ctx).Create(request).Error
}

// FindActiveByPair record ที่ cancel แล้วจะถูกข้าม เหลือ record active
// ได้มากสุดหนึ่งรายการต่อคู่ (service เป็นคนรักษา invariant นี้ตอน insert)
func (r *friendRequestRepository) FindActiveByPair(ctx context.Context, a, b uuid.UUID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status IN ?",
			a, b, b, a, []string{models.FriendStatusPending, models.FriendStatusAccepted}).
		Order("created_at DESC").
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) FindPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*models.FriendRequest, error) {
	var requests []*models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, models.FriendStatusPending).
		Preload("Sender").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *friendRequestRepository) FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Select("CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END", userID).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.FriendStatusAccepted).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *friendRequestRepository) FindFriends(ctx context.Context, userID uuid.UUID) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins(`JOIN friend_requests ON friend_requests.status = ?
			AND ((friend_requests.sender_id = ? AND users.id = friend_requests.receiver_id)
			OR (friend_requests.receiver_id = ? AND users.id = friend_requests.sender_id))`,
			models.FriendStatusAccepted, userID, userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *friendRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
