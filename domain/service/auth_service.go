// domain/service/auth_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
)

// AuthService จัดการสมัครสมาชิก เข้าสู่ระบบ และ reset password
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*dto.UserDTO, string, error)
	Login(ctx context.Context, email, password string) (*dto.UserDTO, string, error)

	// ValidateToken ตรวจสอบ JWT และคืน user id ที่อยู่ใน token
	ValidateToken(token string) (uuid.UUID, error)

	// RequestResetCode สร้างรหัส 6 หลักและบันทึกไว้ (อายุ 10 นาที)
	RequestResetCode(ctx context.Context, email string) error

	// ResetPassword ตั้งรหัสผ่านใหม่ด้วยรหัสยืนยัน
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}
