package utils

import (
	"survey-api/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError ส่ง error กลับในรูป models.ErrorResponse เหมือนกันทุก endpoint
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
