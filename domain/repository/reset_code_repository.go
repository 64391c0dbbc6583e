// domain/repository/reset_code_repository.go
package repository

import (
	"context"

	"github.com/reiggrau/tribes-backend/domain/models"
)

// ResetCodeRepository จัดการรหัสยืนยันสำหรับ reset password และลบบัญชี
type ResetCodeRepository interface {
	Create(ctx context.Context, code *models.ResetCode) error

	// FindValidByEmail หารหัสล่าสุดของ email ที่ยังไม่หมดอายุ (10 นาที)
	FindValidByEmail(ctx context.Context, email string) (*models.ResetCode, error)

	DeleteByEmail(ctx context.Context, email string) error
}
