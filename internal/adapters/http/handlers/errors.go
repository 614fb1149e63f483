package handlers

import (
	"errors"

	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/response"
	"schoolconnect/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// handleError maps service errors to HTTP responses.
// Anything unrecognised is logged and reported as a 500 with fallback as the detail.
func handleError(c *fiber.Ctx, log *zap.Logger, err error, fallback string) error {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return response.ValidationFailed(c, vErr.Message, vErr.Fields)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return response.BadRequest(c, "Email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, "Not authenticated")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "Not authorized")
	case errors.Is(err, domain.ErrSchoolNotFound):
		return response.NotFound(c, "School not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "User not found")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Resource not found")
	default:
		log.Error(fallback, zap.Error(err), zap.String("path", c.Path()))
		return response.InternalServerError(c, fallback)
	}
}
