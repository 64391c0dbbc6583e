// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/interfaces/api/handler"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

// SetupUserRoutes กำหนดเส้นทาง API สำหรับข้อมูลผู้ใช้
func SetupUserRoutes(router fiber.Router, authMiddleware *middleware.AuthMiddleware, userHandler *handler.UserHandler) {
	users := router.Group("/users")
	users.Use(authMiddleware.Protected())

	// ดึงข้อมูลผู้ใช้ปัจจุบัน
	users.Get("/me", userHandler.GetCurrentUser)

	// แก้ไขโปรไฟล์ของตัวเอง
	users.Put("/me", userHandler.UpdateProfile)

	// ลบบัญชีของตัวเอง (ยืนยันด้วยรหัสจาก email)
	users.Delete("/me", userHandler.DeleteAccount)

	// ค้นหาผู้ใช้จาก username
	users.Get("/search", userHandler.SearchUsers)

	// ดึงโปรไฟล์ผู้ใช้ตามไอดี
	users.Get("/:userId", userHandler.GetProfile)
}
