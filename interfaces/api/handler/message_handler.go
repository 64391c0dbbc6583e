// interfaces/api/handler/message_handler.go
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/domain/service"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GetGlobalMessages ดึงข้อความล่าสุดจาก global chat
func (h *MessageHandler) GetGlobalMessages(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	messages, err := h.messageService.GetGlobalMessages(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}

// GetMessagesWith ดึงข้อความระหว่างเรากับผู้ใช้อีกคน
func (h *MessageHandler) GetMessagesWith(c *fiber.Ctx) error {
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

	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	messages, err := h.messageService.GetMessagesBetween(c.Context(), userID, otherID, limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}
