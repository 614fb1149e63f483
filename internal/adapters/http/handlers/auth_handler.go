package handlers

import (
	"schoolconnect/internal/adapters/http/middleware"
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	log         *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Register handles user registration
// @Summary Register new user
// @Description Create an unapproved account. Role defaults to student.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to register user")
	}

	return response.OK(c, user)
}

// Login handles user login
// @Summary Login user
// @Description Exchange email and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to login")
	}

	return response.OK(c, result)
}

// Me returns current user info
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return response.OK(c, middleware.CurrentUser(c))
}
