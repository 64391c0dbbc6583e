// domain/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/models"
)

// UserRepository จัดการข้อมูลผู้ใช้ในฐานข้อมูล
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*models.User, error)

	// SetOnline อัปเดต online flag ที่ persist ไว้คู่กับ presence registry
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error

	// ResetAllOnline ตั้ง online = false ให้ทุกคน เรียกตอน boot
	// เพราะ registry ใน memory เริ่มจากศูนย์ flag เดิมในฐานข้อมูลถือว่า stale
	ResetAllOnline(ctx context.Context) error

	// DeleteAccountCascade ลบ messages, friend requests, codes และบัญชี
	// ทั้งหมดใน transaction เดียว
	DeleteAccountCascade(ctx context.Context, id uuid.UUID, email string) error
}
