package server

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
	"github.com/nguyentantai21042004/highlight-flow/internal/source"
)

func respondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

func respondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// statusFor maps pipeline and collaborator errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case highlight.IsValidation(err), errors.Is(err, source.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, source.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func formatValidationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msg := fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		if e.Param() != "" {
			msg = fmt.Sprintf("%s (value: %s)", msg, e.Param())
		}
		messages = append(messages, msg)
	}
	return messages
}

func (s *implServer) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return respondWithError(c, code, err.Error())
}
