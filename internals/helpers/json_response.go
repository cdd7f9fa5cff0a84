// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

// ErrorResponse: every non-2xx body is {"error": ...}
type ErrorResponse struct {
	Error any `json:"error"`
}

const InternalServerError = "Internal Server Error"

// JsonError: error generic (bukan validasi); 5xx never leaks the message it was given
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if status >= fiber.StatusInternalServerError || strings.TrimSpace(message) == "" {
		message = InternalServerError
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// JsonValidationError: 400 with every violated field
func JsonValidationError(c *fiber.Ctx, violations ValidationErrors) error {
	if violations == nil {
		violations = ValidationErrors{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: violations})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK: GET detail
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonList: GET list, always an array (never null)
func JsonList[T any](c *fiber.Ctx, data []T) error {
	if data == nil {
		data = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: POST
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// RequestID returns the id set by the requestid middleware, or "".
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
