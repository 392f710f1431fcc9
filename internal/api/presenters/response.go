package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the payload object as-is, e.g. {"recipe": ...} or
// {"recipes": [...]}, matching what API consumers key on.
func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// MessageResponse is the success shape for delete/like/favorite actions.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ErrorResponse hides collaborator error details behind a stable message;
// clients only ever see the "error" field.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
