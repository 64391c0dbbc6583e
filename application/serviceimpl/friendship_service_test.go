// application/serviceimpl/friendship_service_test.go
package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
	"github.com/reiggrau/tribes-backend/domain/models"
)

func newFriendshipFixture(t *testing.T) (*fakeUserRepo, *fakeFriendRequestRepo, *friendshipService) {
	t.Helper()
	users := newFakeUserRepo()
	requests := newFakeFriendRequestRepo(users)
	svc := NewFriendshipService(requests, users).(*friendshipService)
	return users, requests, svc
}

func TestSendRequestToSelf(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})

	_, err := svc.SendRequest(context.Background(), alice.ID, alice.ID)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSendRequestUnknownReceiver(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})

	_, err := svc.SendRequest(context.Background(), alice.ID, uuid.New())
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSendRequestDuplicate(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("first request: %v", err)
	}

	// ซ้ำทิศทางเดิม
	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); !errors.Is(err, apperrors.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	// ซ้ำสวนทิศทาง คู่ผู้ใช้ไม่สนทิศทาง
	if _, err := svc.SendRequest(context.Background(), bob.ID, alice.ID); !errors.Is(err, apperrors.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate error for reversed pair, got %v", err)
	}
}

func TestAcceptOnlyByReceiver(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	// ผู้ส่ง accept คำขอของตัวเองไม่ได้
	if err := svc.Accept(context.Background(), alice.ID, bob.ID); !errors.Is(err, apperrors.ErrStateConflict) {
		t.Fatalf("expected state conflict for sender accept, got %v", err)
	}

	// receiver accept ได้
	if err := svc.Accept(context.Background(), bob.ID, alice.ID); err != nil {
		t.Fatalf("receiver accept: %v", err)
	}

	status, err := svc.Status(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Status != models.FriendStatusAccepted {
		t.Fatalf("expected accepted, got %s", status.Status)
	}
}

func TestAcceptWithoutRequest(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if err := svc.Accept(context.Background(), bob.ID, alice.ID); !errors.Is(err, apperrors.ErrStateConflict) {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestAcceptTwice(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.Accept(context.Background(), bob.ID, alice.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// accepted ไปแล้ว accept ซ้ำต้อง conflict
	if err := svc.Accept(context.Background(), bob.ID, alice.ID); !errors.Is(err, apperrors.ErrStateConflict) {
		t.Fatalf("expected state conflict on second accept, got %v", err)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	// ไม่มีความสัมพันธ์อยู่ ก็ยังสำเร็จ
	if err := svc.Cancel(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("cancel with no relation: %v", err)
	}

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.Cancel(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	if err := svc.Cancel(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	status, err := svc.Status(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Status != "none" {
		t.Fatalf("expected none after cancel, got %s", status.Status)
	}
}

func TestCancelByEitherSide(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.Accept(context.Background(), bob.ID, alice.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// receiver ฝั่งไหนก็เลิกเป็นเพื่อนได้
	if err := svc.Cancel(context.Background(), bob.ID, alice.ID); err != nil {
		t.Fatalf("cancel by receiver: %v", err)
	}

	ids, err := svc.GetFriendIDs(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("friend ids: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no friends after cancel, got %d", len(ids))
	}
}

func TestReRequestAfterCancel(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.Cancel(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// หลัง cancel ขอใหม่ได้ เป็น record ใหม่
	status, err := svc.SendRequest(context.Background(), bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("re-request: %v", err)
	}
	if status.Status != models.FriendStatusPending {
		t.Fatalf("expected pending, got %s", status.Status)
	}
}

func TestStatusDirection(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	fromAlice, err := svc.Status(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("status from alice: %v", err)
	}
	if fromAlice.Status != models.FriendStatusPending || fromAlice.Direction != "sent" {
		t.Fatalf("expected pending/sent, got %s/%s", fromAlice.Status, fromAlice.Direction)
	}

	fromBob, err := svc.Status(context.Background(), bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("status from bob: %v", err)
	}
	if fromBob.Status != models.FriendStatusPending || fromBob.Direction != "received" {
		t.Fatalf("expected pending/received, got %s/%s", fromBob.Status, fromBob.Direction)
	}

	self, err := svc.Status(context.Background(), alice.ID, alice.ID)
	if err != nil {
		t.Fatalf("self status: %v", err)
	}
	if self.Status != "self" {
		t.Fatalf("expected self, got %s", self.Status)
	}
}

func TestFriendshipIsSymmetric(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.Accept(context.Background(), bob.ID, alice.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	aliceFriends, err := svc.GetFriendIDs(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("alice friends: %v", err)
	}
	bobFriends, err := svc.GetFriendIDs(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("bob friends: %v", err)
	}

	if len(aliceFriends) != 1 || aliceFriends[0] != bob.ID {
		t.Fatalf("expected alice to have bob as friend, got %v", aliceFriends)
	}
	if len(bobFriends) != 1 || bobFriends[0] != alice.ID {
		t.Fatalf("expected bob to have alice as friend, got %v", bobFriends)
	}
}

func TestGetPendingRequests(t *testing.T) {
	users, _, svc := newFriendshipFixture(t)
	alice := users.add(&models.User{Username: "alice"})
	bob := users.add(&models.User{Username: "bob"})
	carol := users.add(&models.User{Username: "carol"})

	if _, err := svc.SendRequest(context.Background(), alice.ID, carol.ID); err != nil {
		t.Fatalf("alice request: %v", err)
	}
	if _, err := svc.SendRequest(context.Background(), bob.ID, carol.ID); err != nil {
		t.Fatalf("bob request: %v", err)
	}

	pending, err := svc.GetPendingRequests(context.Background(), carol.ID)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending requests, got %d", len(pending))
	}
	for _, item := range pending {
		if item.Status != models.FriendStatusPending {
			t.Fatalf("expected pending status, got %s", item.Status)
		}
		if item.Username == "" {
			t.Fatalf("expected sender username to be filled in")
		}
	}
}
