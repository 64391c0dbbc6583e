// infrastructure/persistence/postgres/user_repository.go
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/models"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).
		Where("username ILIKE ?", prefix+"%").
		Order("username ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("online", online).Error
}

func (r *userRepository) ResetAllOnline(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("online = ?", true).
		Update("online", false).Error
}

// DeleteAccountCascade ลบทุกอย่างของบัญชีใน transaction เดียว
// ต่างจากระบบเดิมที่ยิงเป็น query แยก ถ้าพังกลางทางข้อมูลจะไม่ค้างครึ่งๆ
func (r *userRepository) DeleteAccountCascade(ctx context.Context, id uuid.UUID, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).
			Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).
			Delete(&models.FriendRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ?", email).
			Delete(&models.ResetCode{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}
