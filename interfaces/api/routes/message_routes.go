// interfaces/api/routes/message_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/interfaces/api/handler"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

// SetupMessageRoutes กำหนดเส้นทาง API สำหรับประวัติข้อความ
func SetupMessageRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, messageHandler *handler.MessageHandler) {
	messages := router.Group("/messages")
	messages.Use(authMiddleware.Protected())

	// ข้อความล่าสุดจาก global chat
	messages.Get("/global", messageHandler.GetGlobalMessages)

	// ข้อความระหว่างเรากับผู้ใช้อีกคน
	messages.Get("/:userId", messageHandler.GetMessagesWith)
}
