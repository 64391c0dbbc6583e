// domain/service/user_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
)

// UserService จัดการข้อมูลโปรไฟล์ผู้ใช้
type UserService interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email, bio string) (*dto.UserDTO, error)
	SearchUsers(ctx context.Context, prefix string) ([]*dto.UserDTO, error)

	// DeleteAccount ลบบัญชีพร้อม messages, requests และ codes ใน transaction เดียว
	// ต้องยืนยันด้วยรหัสที่ส่งไปทาง email ก่อน
	DeleteAccount(ctx context.Context, id uuid.UUID, code string) error
}
