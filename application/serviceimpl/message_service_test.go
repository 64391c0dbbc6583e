// application/serviceimpl/message_service_test.go
package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/dto"
	"github.com/reiggrau/tribes-backend/domain/models"
	"gorm.io/gorm"
)

// fakeMessageRepo เก็บข้อความใน memory พร้อมประทับ id/created_at ตอน insert
type fakeMessageRepo struct {
	mu        sync.Mutex
	messages  []*models.Message
	usernames map[uuid.UUID]string
	createErr error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{usernames: make(map[uuid.UUID]string)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindByIDWithSender(ctx context.Context, id uuid.UUID) (*dto.MessageDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.ID == id {
			return r.toDTO(message), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMessageRepo) FindBetween(ctx context.Context, a, b uuid.UUID, limit int) ([]*dto.MessageDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []*dto.MessageDTO
	for _, message := range r.messages {
		direct := (message.SenderID == a && message.ReceiverID == b) ||
			(message.SenderID == b && message.ReceiverID == a)
		if direct {
			rows = append(rows, r.toDTO(message))
		}
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	return rows, nil
}

func (r *fakeMessageRepo) FindGlobal(ctx context.Context, limit int) ([]*dto.MessageDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []*dto.MessageDTO
	for _, message := range r.messages {
		if message.ReceiverID == models.GlobalChatID {
			rows = append(rows, r.toDTO(message))
		}
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	return rows, nil
}

func (r *fakeMessageRepo) toDTO(message *models.Message) *dto.MessageDTO {
	return &dto.MessageDTO{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Username:   r.usernames[message.SenderID],
		Text:       message.Text,
		CreatedAt:  message.CreatedAt,
	}
}

func TestSendMessagePersistsThenFansOut(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{}
	svc := NewMessageService(repo, notifier)

	sender := uuid.New()
	repo.usernames[sender] = "alice"

	row, err := svc.SendMessage(context.Background(), sender, models.GlobalChatID, "hello world")
	if err != nil {
		t.Fatalf("send message: %v", err)
	}

	if row.ID == uuid.Nil {
		t.Fatal("expected server assigned id")
	}
	if row.CreatedAt.IsZero() {
		t.Fatal("expected server assigned timestamp")
	}
	if row.Username != "alice" {
		t.Fatalf("expected sender username, got %q", row.Username)
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 fanout, got %d", len(notifier.messages))
	}
	if notifier.messages[0].ID != row.ID {
		t.Fatal("fanout payload should be the persisted row")
	}
}

func TestSendMessageValidation(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{}
	svc := NewMessageService(repo, notifier)

	if _, err := svc.SendMessage(context.Background(), uuid.Nil, models.GlobalChatID, "hi"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for missing sender, got %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), uuid.New(), models.GlobalChatID, "   "); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for blank text, got %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("no fanout expected on validation failure, got %d", len(notifier.messages))
	}
}

func TestSendMessageAbortsOnStoreFailure(t *testing.T) {
	repo := newFakeMessageRepo()
	repo.createErr = errors.New("connection refused")
	notifier := &fakeNotifier{}
	svc := NewMessageService(repo, notifier)

	if _, err := svc.SendMessage(context.Background(), uuid.New(), models.GlobalChatID, "hello"); err == nil {
		t.Fatal("expected error when insert fails")
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("no fanout expected when persist fails, got %d", len(notifier.messages))
	}
}

func TestSendMessageStoreTimeout(t *testing.T) {
	repo := newFakeMessageRepo()
	repo.createErr = context.DeadlineExceeded
	notifier := &fakeNotifier{}
	svc := NewMessageService(repo, notifier)

	_, err := svc.SendMessage(context.Background(), uuid.New(), models.GlobalChatID, "hello")
	if !errors.Is(err, apperrors.ErrStoreTimeout) {
		t.Fatalf("expected store timeout, got %v", err)
	}
}

func TestGetMessagesDefaultsLimit(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{}
	svc := NewMessageService(repo, notifier)

	sender := uuid.New()
	for i := 0; i < defaultMessageLimit+5; i++ {
		if _, err := svc.SendMessage(context.Background(), sender, models.GlobalChatID, "msg"); err != nil {
			t.Fatalf("send message %d: %v", i, err)
		}
	}

	rows, err := svc.GetGlobalMessages(context.Background(), 0)
	if err != nil {
		t.Fatalf("get global: %v", err)
	}
	if len(rows) != defaultMessageLimit {
		t.Fatalf("expected %d rows with default limit, got %d", defaultMessageLimit, len(rows))
	}
}

func TestGetMessagesBetween(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{}
	svc := NewMessageService(repo, notifier)

	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	if _, err := svc.SendMessage(context.Background(), alice, bob, "to bob"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), bob, alice, "to alice"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), alice, carol, "to carol"); err != nil {
		t.Fatalf("send: %v", err)
	}

	rows, err := svc.GetMessagesBetween(context.Background(), alice, bob, 50)
	if err != nil {
		t.Fatalf("get between: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 messages between alice and bob, got %d", len(rows))
	}
}
