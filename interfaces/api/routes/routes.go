// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/interfaces/api/handler"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

// SetupRoutes กำหนดเส้นทาง API ทั้งหมดของแอปพลิเคชัน
func SetupRoutes(
	app *fiber.App,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	friendshipHandler *handler.FriendshipHandler,
	messageHandler *handler.MessageHandler,
) {
	// สร้าง API group
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	// กำหนดเส้นทางต่างๆ
	SetupAuthRoutes(api, authHandler)
	SetupUserRoutes(api, authMiddleware, userHandler)
	SetupFriendshipRoutes(api, authMiddleware, friendshipHandler)
	SetupMessageRoutes(api, authMiddleware, messageHandler)
}
