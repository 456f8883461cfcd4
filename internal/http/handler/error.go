package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"credtrack/internal/apperror"
	"credtrack/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// statusForCode is the single place a domain error code becomes an HTTP status.
func statusForCode(code apperror.Code) int {
	switch code {
	case apperror.CodeUnauthenticated, apperror.CodeInvalidSession:
		return fiber.StatusUnauthorized
	case apperror.CodeForbidden:
		return fiber.StatusForbidden
	case apperror.CodeValidation:
		return fiber.StatusBadRequest
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeUnsupportedMedia:
		return fiber.StatusUnsupportedMediaType
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses. Domain errors surface their code; server faults keep their
// detail out of the response body.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *apperror.Error
		if errors.As(err, &ae) {
			status := statusForCode(ae.Code)
			message := ae.Message
			if status == fiber.StatusInternalServerError {
				message = "internal server error"
			}
			return writeError(c, status, string(ae.Code), message)
		}

		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
