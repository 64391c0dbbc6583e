// infrastructure/persistence/postgres/reset_code_repository.go
package postgres

import (
	"context"
	"time"

	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"gorm.io/gorm"
)

// codeTTL รหัสยืนยันมีอายุ 10 นาที
const codeTTL = 10 * time.Minute

type resetCodeRepository struct {
	db *gorm.DB
}

func NewResetCodeRepository(db *gorm.DB) repository.ResetCodeRepository {
	return &resetCodeRepository{db: db}
}

func (r *resetCodeRepository) Create(ctx context.Context, code *models.ResetCode) error {
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *resetCodeRepository) FindValidByEmail(ctx context.Context, email string) (*models.ResetCode, error) {
	var code models.ResetCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND created_at > ?", email, time.Now().Add(-codeTTL)).
		Order("created_at DESC").
		First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *resetCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.ResetCode{}).Error
}
