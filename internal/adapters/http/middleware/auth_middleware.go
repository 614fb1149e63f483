package middleware

import (
	"errors"
	"strings"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/core/policy"
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/jwt"
	"schoolconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

// AuthMiddleware requires a valid bearer token and stores the caller in Locals
func AuthMiddleware(auth services.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return response.Unauthorized(c, "Not authenticated")
		}

		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				return response.Unauthorized(c, "Token has expired")
			case errors.Is(err, domain.ErrUnknownIdentity):
				return response.Unauthorized(c, "User not found")
			case errors.Is(err, domain.ErrUnauthorized):
				return response.Unauthorized(c, "Invalid token")
			default:
				return response.InternalServerError(c, "Failed to authenticate")
			}
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// Require rejects callers whose role may not perform action.
// It must run after AuthMiddleware.
func Require(p *policy.Policy, action policy.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return response.Unauthorized(c, "Not authenticated")
		}
		if err := p.Authorize(user.Role, action); err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				return response.Forbidden(c, "Not authorized")
			}
			return err
		}
		return c.Next()
	}
}

// CurrentUser returns the identity stored by AuthMiddleware, or nil
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
