// application/serviceimpl/auth_service_test.go
package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/models"
	"gorm.io/gorm"
)

// fakeResetCodeRepo เก็บรหัสยืนยันใน memory
type fakeResetCodeRepo struct {
	mu    sync.Mutex
	codes []*models.ResetCode
}

func (r *fakeResetCodeRepo) Create(ctx context.Context, code *models.ResetCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	code.CreatedAt = time.Now()
	r.codes = append(r.codes, code)
	return nil
}

func (r *fakeResetCodeRepo) FindValidByEmail(ctx context.Context, email string) (*models.ResetCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.codes) - 1; i >= 0; i-- {
		code := r.codes[i]
		if code.Email == email && time.Since(code.CreatedAt) < 10*time.Minute {
			return code, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeResetCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.codes[:0]
	for _, code := range r.codes {
		if code.Email != email {
			kept = append(kept, code)
		}
	}
	r.codes = kept
	return nil
}

func newAuthFixture(t *testing.T) (*fakeUserRepo, *fakeResetCodeRepo, *authService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	users := newFakeUserRepo()
	codes := &fakeResetCodeRepo{}
	svc := NewAuthService(users, codes).(*authService)
	return users, codes, svc
}

func TestRegisterAndLogin(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	user, token, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("expected token on register")
	}
	if user.Username != "alice" {
		t.Fatalf("expected username alice, got %s", user.Username)
	}

	loggedIn, loginToken, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatal("login returned a different user")
	}

	userID, err := svc.ValidateToken(loginToken)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if userID != user.ID {
		t.Fatal("token identity does not match user")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Register(context.Background(), "alice", "other@example.com", "secret1"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for duplicate username, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "other", "alice@example.com", "secret1"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for duplicate email, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "secret1"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestResetPasswordFlow(t *testing.T) {
	_, codes, svc := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.RequestResetCode(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("request reset code: %v", err)
	}
	if len(codes.codes) != 1 {
		t.Fatalf("expected 1 stored code, got %d", len(codes.codes))
	}
	code := codes.codes[0].Code
	if len(code) != resetCodeLen {
		t.Fatalf("expected %d digit code, got %q", resetCodeLen, code)
	}

	// รหัสผิดต้องไม่ผ่าน
	if err := svc.ResetPassword(context.Background(), "alice@example.com", "000000x", "newsecret"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for wrong code, got %v", err)
	}

	if err := svc.ResetPassword(context.Background(), "alice@example.com", code, "newsecret"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	// รหัสเดิมใช้ซ้ำไม่ได้
	if err := svc.ResetPassword(context.Background(), "alice@example.com", code, "again"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for reused code, got %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "newsecret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "secret1"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
}

func TestRequestResetCodeUnknownEmail(t *testing.T) {
	_, codes, svc := newAuthFixture(t)

	// ไม่เปิดเผยว่า email ไหนมีบัญชี
	if err := svc.RequestResetCode(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if len(codes.codes) != 0 {
		t.Fatalf("no code should be stored for unknown email, got %d", len(codes.codes))
	}
}
