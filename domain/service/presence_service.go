// domain/service/presence_service.go
package service

import (
	"context"

	"github.com/google/uuid"
)

// PresenceService เก็บสถานะออนไลน์ที่ persist ไว้คู่กับ registry ใน memory
// เขียนลง redis (พร้อม TTL) และ users.online ในฐานข้อมูล
type PresenceService interface {
	SetUserOnline(ctx context.Context, userID uuid.UUID) error
	SetUserOffline(ctx context.Context, userID uuid.UUID) error
	IsUserOnline(ctx context.Context, userID uuid.UUID) (bool, error)

	// Reset ล้างสถานะออนไลน์ทั้งหมดตอน boot เพราะ registry เริ่มจากศูนย์
	Reset(ctx context.Context) error
}
