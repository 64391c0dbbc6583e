// application/serviceimpl/user_service.go
package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"github.com/reiggrau/tribes-backend/domain/service"
	"gorm.io/gorm"
)

const searchLimit = 20

// userService จัดการข้อมูลโปรไฟล์ผู้ใช้
type userService struct {
	userRepo      repository.UserRepository
	resetCodeRepo repository.ResetCodeRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	resetCodeRepo repository.ResetCodeRepository,
) service.UserService {
	return &userService{
		userRepo:      userRepo,
		resetCodeRepo: resetCodeRepo,
	}
}

// GetUserByID ดึงข้อมูลผู้ใช้ตาม id
func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)
		}
		return nil, wrapStoreErr("find user", err)
	}
	return toUserDTO(user), nil
}

// UpdateProfile แก้ไข username, email, bio
// field ที่ส่งมาเป็นค่าว่างจะไม่ถูกแก้
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, username, email, bio string) (*dto.UserDTO, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)
		}
		return nil, wrapStoreErr("find user", err)
	}

	// ตรวจสอบว่าค่าใหม่ไม่ชนกับผู้ใช้คนอื่น
	if (username != "" && username != user.Username) || (email != "" && email != user.Email) {
		checkUsername := username
		if checkUsername == "" {
			checkUsername = user.Username
		}
		checkEmail := email
		if checkEmail == "" {
			checkEmail = user.Email
		}

		matches, err := s.userRepo.FindByUsernameOrEmail(ctx, checkUsername, checkEmail)
		if err != nil {
			return nil, wrapStoreErr("check uniqueness", err)
		}
		for _, m := range matches {
			if m.ID != id {
				return nil, fmt.Errorf("%w: username or email already taken", apperrors.ErrValidation)
			}
		}
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if bio != "" {
		user.Bio = bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, wrapStoreErr("update user", err)
	}
	return toUserDTO(user), nil
}

// SearchUsers ค้นหาผู้ใช้จาก prefix ของ username (case insensitive)
func (s *userService) SearchUsers(ctx context.Context, prefix string) ([]*dto.UserDTO, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []*dto.UserDTO{}, nil
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	users, err := s.userRepo.SearchByUsernamePrefix(ctx, prefix, searchLimit)
	if err != nil {
		return nil, wrapStoreErr("search users", err)
	}

	results := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		results = append(results, toUserDTO(user))
	}
	return results, nil
}

// DeleteAccount ลบบัญชีหลังยืนยันด้วยรหัสที่ส่งไปทาง email
// ข้อมูลที่เกี่ยวข้องทั้งหมดถูกลบใน transaction เดียว
func (s *userService) DeleteAccount(ctx context.Context, id uuid.UUID, code string) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user", apperrors.ErrNotFound)
		}
		return wrapStoreErr("find user", err)
	}

	stored, err := s.resetCodeRepo.FindValidByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid or expired code", apperrors.ErrValidation)
		}
		return wrapStoreErr("find confirmation code", err)
	}
	if stored.Code != code {
		return fmt.Errorf("%w: invalid or expired code", apperrors.ErrValidation)
	}

	if err := s.userRepo.DeleteAccountCascade(ctx, id, user.Email); err != nil {
		return wrapStoreErr("delete account", err)
	}
	return nil
}
