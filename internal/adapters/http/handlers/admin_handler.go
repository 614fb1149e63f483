package handlers

import (
	"schoolconnect/internal/adapters/http/middleware"
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles the admin console endpoints
type AdminHandler struct {
	adminService *services.AdminService
	log          *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		log:          log,
	}
}

// Stats returns portal-wide totals
// @Summary Admin statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.AdminStats
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats(c.UserContext())
	if err != nil {
		return handleError(c, h.log, err, "Failed to load statistics")
	}
	return response.OK(c, stats)
}

// ListUsers lists users
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.User
// @Failure 403 {object} response.ErrorBody
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	items, total, err := h.adminService.ListUsers(c.UserContext(), c.Query("role"), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list users")
	}
	return pagination.Write(c, items, total)
}

// ApproveUser approves a user
// @Summary Approve user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.MessageBody
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admin/users/{id}/approve [put]
func (h *AdminHandler) ApproveUser(c *fiber.Ctx) error {
	if _, err := h.adminService.ApproveUser(c.UserContext(), middleware.CurrentUser(c).ID, c.Params("id")); err != nil {
		return handleError(c, h.log, err, "Failed to approve user")
	}
	return response.Message(c, "User approved successfully")
}
