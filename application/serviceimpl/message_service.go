// application/serviceimpl/message_service.go
package serviceimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"github.com/reiggrau/tribes-backend/domain/service"
)

// defaultMessageLimit จำนวนข้อความที่ดึงต่อครั้งถ้า client ไม่ระบุ
const defaultMessageLimit = 10

type messageService struct {
	messageRepo         repository.MessageRepository
	notificationService service.NotificationService
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	notificationService service.NotificationService,
) service.MessageService {
	return &messageService{
		messageRepo:         messageRepo,
		notificationService: notificationService,
	}
}

// SendMessage ลำดับคือ validate -> persist -> โหลด row ที่ server ประทับค่าแล้ว -> fan out
// ถ้า persist ล้มเหลวจะ abort ก่อนถึงขั้น fan out ส่วนการ push เป็น best effort
func (s *messageService) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, text string) (*dto.MessageDTO, error) {
	if senderID == uuid.Nil {
		return nil, fmt.Errorf("%w: sender is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is empty", apperrors.ErrValidation)
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, wrapStoreErr("insert message", err)
	}

	// โหลดซ้ำเพื่อให้ได้ id/created_at ที่ฐานข้อมูลกำหนด พร้อมข้อมูลผู้ส่ง
	row, err := s.messageRepo.FindByIDWithSender(ctx, message.ID)
	if err != nil {
		return nil, wrapStoreErr("reload message", err)
	}

	s.notificationService.NotifyNewMessage(row)

	return row, nil
}

func (s *messageService) GetMessagesBetween(ctx context.Context, userID, otherID uuid.UUID, limit int) ([]*dto.MessageDTO, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	rows, err := s.messageRepo.FindBetween(ctx, userID, otherID, limit)
	if err != nil {
		return nil, wrapStoreErr("find messages", err)
	}
	return rows, nil
}

func (s *messageService) GetGlobalMessages(ctx context.Context, limit int) ([]*dto.MessageDTO, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	rows, err := s.messageRepo.FindGlobal(ctx, limit)
	if err != nil {
		return nil, wrapStoreErr("find global messages", err)
	}
	return rows, nil
}
