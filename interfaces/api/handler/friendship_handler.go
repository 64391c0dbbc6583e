// interfaces/api/handler/friendship_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/domain/service"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

type FriendshipHandler struct {
	friendshipService   service.FriendshipService
	notificationService service.NotificationService
}

func NewFriendshipHandler(
	friendshipService service.FriendshipService,
	notificationService service.NotificationService,
) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipService:   friendshipService,
		notificationService: notificationService,
	}
}

// GetFriends ดึงรายชื่อเพื่อนทั้งหมด (accepted)
func (h *FriendshipHandler) GetFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friends, err := h.friendshipService.GetFriends(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"friends": friends,
	})
}

// GetPendingRequests ดึงคำขอเป็นเพื่อนที่รอการตอบรับ
func (h *FriendshipHandler) GetPendingRequests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	requests, err := h.friendshipService.GetPendingRequests(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": requests,
	})
}

// GetStatus ตรวจสอบความสัมพันธ์กับผู้ใช้คนใดคนหนึ่ง
func (h *FriendshipHandler) GetStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	otherID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return nil
	}

	status, err := h.friendshipService.Status(c.Context(), userID, otherID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  status,
	})
}

// SendRequest ส่งคำขอเป็นเพื่อน
func (h *FriendshipHandler) SendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := parseUUIDParam(c, "friendId")
	if err != nil {
		return nil
	}

	status, err := h.friendshipService.SendRequest(c.Context(), userID, friendID)
	if err != nil {
		return errorResponse(c, err)
	}

	// แจ้ง receiver ให้ refresh รายการคำขอ
	h.notificationService.NotifyRequestUpdate(friendID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"status":  status,
	})
}

// AcceptRequest ตอบรับคำขอเป็นเพื่อน ทำได้เฉพาะ receiver
func (h *FriendshipHandler) AcceptRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := parseUUIDParam(c, "friendId")
	if err != nil {
		return nil
	}

	if err := h.friendshipService.Accept(c.Context(), userID, friendID); err != nil {
		return errorResponse(c, err)
	}

	// ทั้งสองฝ่ายเห็นสถานะใหม่
	h.notificationService.NotifyRequestUpdate(friendID)
	h.notificationService.NotifyRequestUpdate(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "friend request accepted",
	})
}

// RemoveFriend ยกเลิกคำขอหรือเลิกเป็นเพื่อน idempotent
func (h *FriendshipHandler) RemoveFriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := parseUUIDParam(c, "friendId")
	if err != nil {
		return nil
	}

	if err := h.friendshipService.Cancel(c.Context(), userID, friendID); err != nil {
		return errorResponse(c, err)
	}

	h.notificationService.NotifyRequestUpdate(friendID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "friendship removed",
	})
}
