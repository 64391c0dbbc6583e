// interfaces/api/handler/respond.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/reiggrau/tribes-backend/domain/apperrors"
)

// errorResponse แปลง error จาก service layer เป็น HTTP response
func errorResponse(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		code = fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateRequest), errors.Is(err, apperrors.ErrStateConflict):
		code = fiber.StatusConflict
	case errors.Is(err, apperrors.ErrStoreTimeout):
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// parseUUIDParam แปลง URL parameter เป็น UUID
// ถ้า parse ไม่ผ่าน response 400 ถูกเขียนไปแล้ว handler แค่ return nil
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid " + name,
		})
		return uuid.Nil, err
	}
	return id, nil
}
