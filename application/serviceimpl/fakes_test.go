// application/serviceimpl/fakes_test.go
package serviceimpl

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
	"gorm.io/gorm"
)

// fakeUserRepo เก็บผู้ใช้ใน memory สำหรับทดสอบ service layer
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*models.User
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*models.User
	for _, user := range r.users {
		if strings.HasPrefix(strings.ToLower(user.Username), strings.ToLower(prefix)) {
			matches = append(matches, user)
		}
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

func (r *fakeUserRepo) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Online = online
	}
	return nil
}

func (r *fakeUserRepo) ResetAllOnline(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		user.Online = false
	}
	return nil
}

func (r *fakeUserRepo) DeleteAccountCascade(ctx context.Context, id uuid.UUID, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeFriendRequestRepo เก็บความสัมพันธ์ใน memory
// semantics เดียวกับของจริง: active record มีได้คู่ละหนึ่งรายการ ไม่สนทิศทาง
type fakeFriendRequestRepo struct {
	mu       sync.Mutex
	requests []*models.FriendRequest
	users    *fakeUserRepo
}

func newFakeFriendRequestRepo(users *fakeUserRepo) *fakeFriendRequestRepo {
	return &fakeFriendRequestRepo{users: users}
}

func (r *fakeFriendRequestRepo) Create(ctx context.Context, request *models.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	r.requests = append(r.requests, request)
	return nil
}

func (r *fakeFriendRequestRepo) FindActiveByPair(ctx context.Context, a, b uuid.UUID) (*models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.requests) - 1; i >= 0; i-- {
		request := r.requests[i]
		samePair := (request.SenderID == a && request.ReceiverID == b) ||
			(request.SenderID == b && request.ReceiverID == a)
		if samePair && request.IsActive() {
			return request, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFriendRequestRepo) FindPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []*models.FriendRequest
	for _, request := range r.requests {
		if request.ReceiverID == receiverID && request.Status == models.FriendStatusPending {
			if r.users != nil {
				if sender, err := r.users.FindByID(ctx, request.SenderID); err == nil {
					request.Sender = sender
				}
			}
			pending = append(pending, request)
		}
	}
	return pending, nil
}

func (r *fakeFriendRequestRepo) FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for _, request := range r.requests {
		if request.Status != models.FriendStatusAccepted {
			continue
		}
		if request.SenderID == userID {
			ids = append(ids, request.ReceiverID)
		} else if request.ReceiverID == userID {
			ids = append(ids, request.SenderID)
		}
	}
	return ids, nil
}

func (r *fakeFriendRequestRepo) FindFriends(ctx context.Context, userID uuid.UUID) ([]*models.User, error) {
	ids, err := r.FindFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	var friends []*models.User
	for _, id := range ids {
		if user, err := r.users.FindByID(ctx, id); err == nil {
			friends = append(friends, user)
		}
	}
	return friends, nil
}

func (r *fakeFriendRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, request := range r.requests {
		if request.ID == id {
			request.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeNotifier บันทึก event ที่ถูก fan out เพื่อตรวจสอบในเทส
type fakeNotifier struct {
	mu             sync.Mutex
	onlineEvents   [][2]interface{}
	offlineEvents  [][2]interface{}
	messages       []*dto.MessageDTO
	requestUpdates []uuid.UUID
}

func (n *fakeNotifier) NotifyFriendOnline(userID uuid.UUID, friendIDs []uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onlineEvents = append(n.onlineEvents, [2]interface{}{userID, friendIDs})
}

func (n *fakeNotifier) NotifyFriendOffline(userID uuid.UUID, friendIDs []uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.offlineEvents = append(n.offlineEvents, [2]interface{}{userID, friendIDs})
}

func (n *fakeNotifier) NotifyNewMessage(message *dto.MessageDTO) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) NotifyRequestUpdate(userID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requestUpdates = append(n.requestUpdates, userID)
}
