package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the body returned for accepted submissions.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Lang    string `json:"lang,omitempty"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendSuccess sends a success payload with the resolved language tag.
func SendSuccess(c *fiber.Ctx, message, lang string) error {
	if message == "" {
		message = "success"
	}

	return c.Status(fiber.StatusOK).JSON(SuccessResponse{
		Success: true,
		Message: message,
		Lang:    lang,
	})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// ErrorHandler translates unhandled fiber errors into the JSON error shape so
// routing-level failures (unknown path, wrong method) match the API contract.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return SendError(c, code, message)
}
