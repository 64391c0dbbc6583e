// interfaces/api/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/interfaces/api/handler"
)

// SetupAuthRoutes กำหนดเส้นทาง API สำหรับ authentication
func SetupAuthRoutes(router fiber.Router, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth")

	// สมัครสมาชิกใหม่
	auth.Post("/register", authHandler.Register)

	// เข้าสู่ระบบ
	auth.Post("/login", authHandler.Login)

	// ขอรหัสสำหรับ reset password
	auth.Post("/reset", authHandler.RequestResetCode)

	// ตั้งรหัสผ่านใหม่ด้วยรหัสยืนยัน
	auth.Post("/reset/verify", authHandler.ResetPassword)
}
