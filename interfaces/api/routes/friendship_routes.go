// interfaces/api/routes/friendship_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/interfaces/api/handler"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

// SetupFriendshipRoutes กำหนดเส้นทาง API สำหรับระบบเพื่อน
func SetupFriendshipRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, friendshipHandler *handler.FriendshipHandler) {
	friends := router.Group("/friends")
	friends.Use(authMiddleware.Protected())

	// ดึงรายชื่อเพื่อนทั้งหมด
	friends.Get("/", friendshipHandler.GetFriends)

	// ดึงคำขอเป็นเพื่อนที่รอการตอบรับ
	friends.Get("/pending", friendshipHandler.GetPendingRequests)

	// ตรวจสอบความสัมพันธ์กับผู้ใช้คนใดคนหนึ่ง
	friends.Get("/status/:userId", friendshipHandler.GetStatus)

	// ส่งคำขอเป็นเพื่อน
	friends.Post("/request/:friendId", friendshipHandler.SendRequest)

	// ตอบรับคำขอเป็นเพื่อน
	friends.Put("/accept/:friendId", friendshipHandler.AcceptRequest)

	// ยกเลิกคำขอหรือเลิกเป็นเพื่อน
	friends.Delete("/:friendId", friendshipHandler.RemoveFriend)
}
