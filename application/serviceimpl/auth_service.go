// application/serviceimpl/auth_service.go
package serviceimpl

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"github.com/reiggrau/tribes-backend/domain/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTTL      = 72 * time.Hour
	resetCodeLen  = 6
	resetCodeSeed = "0123456789"
)

// authService จัดการสมัครสมาชิก เข้าสู่ระบบ และออก JWT
type authService struct {
	userRepo      repository.UserRepository
	resetCodeRepo repository.ResetCodeRepository
	jwtSecret     []byte
}

func NewAuthService(
	userRepo repository.UserRepository,
	resetCodeRepo repository.ResetCodeRepository,
) service.AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET is not set, using insecure default")
		secret = "tribes-dev-secret"
	}

	return &authService{
		userRepo:      userRepo,
		resetCodeRepo: resetCodeRepo,
		jwtSecret:     []byte(secret),
	}
}

// Register สมัครสมาชิกใหม่ คืน user พร้อม token
func (s *authService) Register(ctx context.Context, username, email, password string) (*dto.UserDTO, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" {
		return nil, "", fmt.Errorf("%w: username and email are required", apperrors.ErrValidation)
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	// ตรวจสอบว่า username หรือ email ซ้ำกับคนอื่นหรือไม่
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, "", wrapStoreErr("find existing user", err)
	}
	if len(existing) > 0 {
		return nil, "", fmt.Errorf("%w: username or email already taken", apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", wrapStoreErr("create user", err)
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return toUserDTO(user), token, nil
}

// Login ตรวจรหัสผ่านแล้วออก token ใหม่
func (s *authService) Login(ctx context.Context, email, password string) (*dto.UserDTO, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// ไม่บอกว่า email หรือรหัสผ่านผิด
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", wrapStoreErr("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return toUserDTO(user), token, nil
}

// ValidateToken ตรวจสอบลายเซ็นและวันหมดอายุ คืน user id จาก subject claim
func (s *authService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperrors.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}

	return userID, nil
}

// RequestResetCode สร้างรหัส 6 หลักและเก็บไว้ให้ตรวจภายใน 10 นาที
// ถ้าไม่พบ email จะคืน nil เหมือนสำเร็จ เพื่อไม่เปิดเผยว่า email ไหนมีบัญชี
func (s *authService) RequestResetCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return wrapStoreErr("find user", err)
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("generate reset code: %w", err)
	}

	if err := s.resetCodeRepo.Create(ctx, &models.ResetCode{
		Email: email,
		Code:  code,
	}); err != nil {
		return wrapStoreErr("create reset code", err)
	}

	// TODO: ต่อ email provider จริง ตอนนี้ log อย่างเดียว
	log.Printf("reset code for %s: %s", email, code)
	return nil
}

// ResetPassword ตรวจรหัสยืนยันแล้วตั้งรหัสผ่านใหม่
func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	ctx, cancel := storeCtx(ctx)
	defer cancel()

	stored, err := s.resetCodeRepo.FindValidByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid or expired code", apperrors.ErrValidation)
		}
		return wrapStoreErr("find reset code", err)
	}
	if stored.Code != code {
		return fmt.Errorf("%w: invalid or expired code", apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return wrapStoreErr("update password", err)
	}

	// ใช้แล้วทิ้ง รหัสเดิมใช้ซ้ำไม่ได้
	if err := s.resetCodeRepo.DeleteByEmail(ctx, email); err != nil {
		log.Printf("delete used reset codes for %s: %v", email, err)
	}
	return nil
}

func (s *authService) signToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func generateResetCode() (string, error) {
	buf := make([]byte, resetCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = resetCodeSeed[int(buf[i])%len(resetCodeSeed)]
	}
	return string(buf), nil
}

// toUserDTO แปลง model เป็น DTO สำหรับ response
func toUserDTO(user *models.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Bio:       user.Bio,
		Picture:   user.Picture,
		Online:    user.Online,
		CreatedAt: user.CreatedAt,
	}
}
