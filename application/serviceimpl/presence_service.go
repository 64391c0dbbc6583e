// application/serviceimpl/presence_service.go
package serviceimpl

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"github.com/reiggrau/tribes-backend/domain/service"
)

const (
	presenceKeyPrefix = "presence:online:"

	// presenceTTL กันคีย์ค้างใน redis ถ้า process ตายโดยไม่ได้เก็บกวาด
	presenceTTL = 24 * time.Hour
)

// presenceService เขียนสถานะออนไลน์ลง redis และ users.online คู่กัน
// ความจริงเรื่อง presence อยู่ที่ registry ใน memory ข้อมูลตรงนี้มีไว้
// ให้ view อื่นอ่าน (เช่นหน้า friends list)
type presenceService struct {
	redisClient *redis.Client
	userRepo    repository.UserRepository
}

func NewPresenceService(redisClient *redis.Client, userRepo repository.UserRepository) service.PresenceService {
	return &presenceService{
		redisClient: redisClient,
		userRepo:    userRepo,
	}
}

func (s *presenceService) SetUserOnline(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.SetOnline(ctx, userID, true); err != nil {
		return wrapStoreErr("set online flag", err)
	}

	if err := s.redisClient.Set(ctx, presenceKeyPrefix+userID.String(), "1", presenceTTL).Err(); err != nil {
		// redis เป็น cache รอง แค่ log ไม่ abort
		log.Printf("Error setting presence key for user %s: %v", userID, err)
	}
	return nil
}

func (s *presenceService) SetUserOffline(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.SetOnline(ctx, userID, false); err != nil {
		return wrapStoreErr("clear online flag", err)
	}

	if err := s.redisClient.Del(ctx, presenceKeyPrefix+userID.String()).Err(); err != nil {
		log.Printf("Error deleting presence key for user %s: %v", userID, err)
	}
	return nil
}

func (s *presenceService) IsUserOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := s.redisClient.Exists(ctx, presenceKeyPrefix+userID.String()).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reset ล้างสถานะออนไลน์ทั้งหมด เรียกครั้งเดียวตอน boot
func (s *presenceService) Reset(ctx context.Context) error {
	if err := s.userRepo.ResetAllOnline(ctx); err != nil {
		return wrapStoreErr("reset online flags", err)
	}

	iter := s.redisClient.Scan(ctx, 0, presenceKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Error deleting stale presence key %s: %v", iter.Val(), err)
		}
	}
	return iter.Err()
}
