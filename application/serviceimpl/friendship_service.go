// application/serviceimpl/friendship_service.go
package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"github.com/reiggrau/tribes-backend/domain/service"
	"gorm.io/gorm"
)

type friendshipService struct {
	friendRequestRepo repository.FriendRequestRepository
	userRepo          repository.UserRepository
}

func NewFriendshipService(
	friendRequestRepo repository.FriendRequestRepository,
	userRepo repository.UserRepository,
) service.FriendshipService {
	return &friendshipService{
		friendRequestRepo: friendRequestRepo,
		userRepo:          userRepo,
	}
}

// SendRequest ส่งคำขอเป็นเพื่อน ทำได้เฉพาะตอนที่ไม่มีความสัมพันธ์ active
func (s *friendshipService) SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*dto.FriendshipStatusDTO, error) {
	// ขอเป็นเพื่อนกับตัวเองไม่ได้
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot send friend request to yourself", apperrors.ErrValidation)
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	// ตรวจสอบว่ามีผู้ใช้ปลายทางอยู่ในระบบ
	if _, err := s.userRepo.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)
		}
		return nil, wrapStoreErr("find receiver", err)
	}

	// กันการ insert ซ้ำ ความสัมพันธ์ active มีได้คู่ละหนึ่งรายการ
	existing, err := s.friendRequestRepo.FindActiveByPair(ctx, senderID, receiverID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapStoreErr("find active relation", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateRequest
	}

	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendStatusPending,
	}
	if err := s.friendRequestRepo.Create(ctx, request); err != nil {
		return nil, wrapStoreErr("create friend request", err)
	}

	return &dto.FriendshipStatusDTO{
		Status:    models.FriendStatusPending,
		Direction: "sent",
		RequestID: &request.ID,
	}, nil
}

// Accept ยอมรับคำขอ ตรวจสอบว่าคนที่เรียกเป็น receiver ของคำขอจริงๆ
// จะ accept คำขอที่ตัวเองส่งไม่ได้
func (s *friendshipService) Accept(ctx context.Context, receiverID, senderID uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	request, err := s.friendRequestRepo.FindActiveByPair(ctx, receiverID, senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no pending request", apperrors.ErrStateConflict)
		}
		return wrapStoreErr("find active relation", err)
	}

	if request.Status != models.FriendStatusPending || request.ReceiverID != receiverID {
		return fmt.Errorf("%w: only the receiver can accept a pending request", apperrors.ErrStateConflict)
	}

	if err := s.friendRequestRepo.UpdateStatus(ctx, request.ID, models.FriendStatusAccepted); err != nil {
		return wrapStoreErr("accept friend request", err)
	}
	return nil
}

// Cancel ยกเลิกคำขอหรือเลิกเป็นเพื่อน record จะไม่ถูกลบ แค่ flip เป็น cancelled
// idempotent เรียกซ้ำตอนไม่มีความสัมพันธ์ active ถือว่าสำเร็จ
func (s *friendshipService) Cancel(ctx context.Context, userID, otherID uuid.UUID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	request, err := s.friendRequestRepo.FindActiveByPair(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return wrapStoreErr("find active relation", err)
	}

	if err := s.friendRequestRepo.UpdateStatus(ctx, request.ID, models.FriendStatusCancelled); err != nil {
		return wrapStoreErr("cancel friend request", err)
	}
	return nil
}

// Status ตรวจสอบความสัมพันธ์ปัจจุบัน คู่ผู้ใช้ไม่สนทิศทาง
func (s *friendshipService) Status(ctx context.Context, userID, otherID uuid.UUID) (*dto.FriendshipStatusDTO, error) {
	if userID == otherID {
		return &dto.FriendshipStatusDTO{Status: "self"}, nil
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	request, err := s.friendRequestRepo.FindActiveByPair(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.FriendshipStatusDTO{Status: "none"}, nil
		}
		return nil, wrapStoreErr("find active relation", err)
	}

	direction := "received"
	if request.SenderID == userID {
		direction = "sent"
	}

	return &dto.FriendshipStatusDTO{
		Status:    request.Status,
		Direction: direction,
		RequestID: &request.ID,
	}, nil
}

func (s *friendshipService) GetFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	ids, err := s.friendRequestRepo.FindFriendIDs(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("find friend ids", err)
	}
	return ids, nil
}

// GetFriends ดึงรายชื่อเพื่อนพร้อม online flag สำหรับแสดงผล
func (s *friendshipService) GetFriends(ctx context.Context, userID uuid.UUID) ([]*dto.FriendDTO, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	users, err := s.friendRequestRepo.FindFriends(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("find friends", err)
	}

	friends := make([]*dto.FriendDTO, 0, len(users))
	for _, user := range users {
		friends = append(friends, &dto.FriendDTO{
			ID:       user.ID,
			Username: user.Username,
			Picture:  user.Picture,
			Status:   models.FriendStatusAccepted,
			Online:   user.Online,
		})
	}
	return friends, nil
}

// GetPendingRequests ดึงคำขอเป็นเพื่อนที่รอการตอบรับจากผู้ใช้นี้
func (s *friendshipService) GetPendingRequests(ctx context.Context, userID uuid.UUID) ([]*dto.FriendDTO, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	requests, err := s.friendRequestRepo.FindPendingByReceiver(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr("find pending requests", err)
	}

	pending := make([]*dto.FriendDTO, 0, len(requests))
	for _, request := range requests {
		item := &dto.FriendDTO{
			ID:     request.SenderID,
			Status: models.FriendStatusPending,
		}
		if request.Sender != nil {
			item.Username = request.Sender.Username
			item.Picture = request.Sender.Picture
			item.Online = request.Sender.Online
		}
		pending = append(pending, item)
	}
	return pending, nil
}
