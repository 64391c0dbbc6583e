// infrastructure/persistence/postgres/message_repository.go
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByIDWithSender(ctx context.Context, id uuid.UUID) (*dto.MessageDTO, error) {
	var row dto.MessageDTO
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Select("messages.id, messages.sender_id, messages.receiver_id, users.username, users.picture, messages.text, messages.created_at").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *messageRepository) FindBetween(ctx context.Context, a, b uuid.UUID, limit int) ([]*dto.MessageDTO, error) {
	var rows []*dto.MessageDTO
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Select("messages.id, messages.sender_id, messages.receiver_id, users.username, users.picture, messages.text, messages.created_at").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("(messages.sender_id = ? AND messages.receiver_id = ?) OR (messages.sender_id = ? AND messages.receiver_id = ?)",
			a, b, b, a).
		Order("messages.created_at ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *messageRepository) FindGlobal(ctx context.Context, limit int) ([]*dto.MessageDTO, error) {
	var rows []*dto.MessageDTO
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Select("messages.id, messages.sender_id, messages.receiver_id, users.username, users.picture, messages.text, messages.created_at").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.receiver_id = ?", models.GlobalChatID).
		Order("messages.created_at ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
