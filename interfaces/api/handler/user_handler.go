// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reiggrau/tribes-backend/domain/service"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
)

type UserHandler struct {
	userService service.UserService
	authService service.AuthService
}

func NewUserHandler(userService service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// GetCurrentUser ดึงข้อมูลผู้ใช้ปัจจุบัน
func (h *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	user, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// GetProfile ดึงข้อมูลโปรไฟล์ผู้ใช้ตามไอดี
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return nil // error response ถูกจัดการในฟังก์ชันแล้ว
	}

	user, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

// UpdateProfile แก้ไขข้อมูลโปรไฟล์ของตัวเอง
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, req.Username, req.Email, req.Bio)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// SearchUsers ค้นหาผู้ใช้จาก prefix ของ username
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")

	users, err := h.userService.SearchUsers(c.Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

type deleteAccountRequest struct {
	Code string `json:"code"`
}

// DeleteAccount ลบบัญชีของตัวเอง ต้องยืนยันด้วยรหัสจาก email
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req deleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if err := h.userService.DeleteAccount(c.Context(), userID, req.Code); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "account deleted",
	})
}
