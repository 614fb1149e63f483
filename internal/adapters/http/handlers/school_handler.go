package handlers

import (
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SchoolHandler handles school and mandal endpoints
type SchoolHandler struct {
	schoolService *services.SchoolService
	log           *zap.Logger
}

// NewSchoolHandler creates a new school handler
func NewSchoolHandler(schoolService *services.SchoolService, log *zap.Logger) *SchoolHandler {
	return &SchoolHandler{
		schoolService: schoolService,
		log:           log,
	}
}

// CreateSchool creates a school
// @Summary Create school
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SchoolInput true "School"
// @Success 200 {object} models.School
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /schools [post]
func (h *SchoolHandler) CreateSchool(c *fiber.Ctx) error {
	var req services.SchoolInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	school, err := h.schoolService.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create school")
	}
	return response.OK(c, school)
}

// ListSchools lists schools
// @Summary List schools
// @Description Filter by mandal and case-insensitive name search
// @Tags Schools
// @Produce json
// @Param mandal_id query string false "Mandal ID"
// @Param search query string false "Name contains"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.School
// @Header 200 {integer} X-Total-Count "Total matching items"
// @Router /schools [get]
func (h *SchoolHandler) ListSchools(c *fiber.Ctx) error {
	filter := services.SchoolFilter{
		MandalID: c.Query("mandal_id"),
		Search:   c.Query("search"),
	}

	items, total, err := h.schoolService.List(c.UserContext(), filter, pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list schools")
	}
	return pagination.Write(c, items, total)
}

// GetSchool gets a school by ID
// @Summary Get school
// @Tags Schools
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} models.School
// @Failure 404 {object} response.ErrorBody
// @Router /schools/{id} [get]
func (h *SchoolHandler) GetSchool(c *fiber.Ctx) error {
	school, err := h.schoolService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err, "Failed to get school")
	}
	return response.OK(c, school)
}

// UpdateSchool replaces a school
// @Summary Replace school
// @Description Overwrites every writable field; id and created_at are kept
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param body body services.SchoolInput true "School"
// @Success 200 {object} models.School
// @Failure 404 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /schools/{id} [put]
func (h *SchoolHandler) UpdateSchool(c *fiber.Ctx) error {
	var req services.SchoolInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	school, err := h.schoolService.Replace(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to update school")
	}
	return response.OK(c, school)
}

// ListMandals lists mandals
// @Summary List mandals
// @Tags Schools
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.Mandal
// @Router /mandals [get]
func (h *SchoolHandler) ListMandals(c *fiber.Ctx) error {
	items, total, err := h.schoolService.ListMandals(c.UserContext(), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list mandals")
	}
	return pagination.Write(c, items, total)
}
