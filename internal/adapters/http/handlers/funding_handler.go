package handlers

import (
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FundingHandler handles donation and school need endpoints
type FundingHandler struct {
	fundingService *services.FundingService
	log            *zap.Logger
}

// NewFundingHandler creates a new funding handler
func NewFundingHandler(fundingService *services.FundingService, log *zap.Logger) *FundingHandler {
	return &FundingHandler{
		fundingService: fundingService,
		log:            log,
	}
}

// CreateDonation records a donation
// @Summary Create donation
// @Description Open to anonymous donors. Payment is recorded as completed.
// @Tags Donations
// @Accept json
// @Produce json
// @Param body body services.DonationInput true "Donation"
// @Success 200 {object} models.Donation
// @Failure 422 {object} response.ErrorBody
// @Router /donations [post]
func (h *FundingHandler) CreateDonation(c *fiber.Ctx) error {
	var req services.DonationInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donation, err := h.fundingService.CreateDonation(c.UserContext(), &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create donation")
	}
	return response.OK(c, donation)
}

// ListDonations lists donations, newest first
// @Summary List donations
// @Tags Donations
// @Produce json
// @Param school_id query string false "School ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.Donation
// @Router /donations [get]
func (h *FundingHandler) ListDonations(c *fiber.Ctx) error {
	items, total, err := h.fundingService.ListDonations(c.UserContext(), c.Query("school_id"), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list donations")
	}
	return pagination.Write(c, items, total)
}

// CreateNeed opens a school funding need
// @Summary Create school need
// @Tags School Needs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.NeedInput true "Need"
// @Success 200 {object} models.SchoolNeed
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /school-needs [post]
func (h *FundingHandler) CreateNeed(c *fiber.Ctx) error {
	var req services.NeedInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	need, err := h.fundingService.CreateNeed(c.UserContext(), &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create school need")
	}
	return response.OK(c, need)
}

// ListNeeds lists school needs, newest first
// @Summary List school needs
// @Tags School Needs
// @Produce json
// @Param school_id query string false "School ID"
// @Param status query string false "active, fulfilled or closed"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.SchoolNeed
// @Router /school-needs [get]
func (h *FundingHandler) ListNeeds(c *fiber.Ctx) error {
	filter := services.NeedFilter{
		SchoolID: c.Query("school_id"),
		Status:   c.Query("status"),
	}

	items, total, err := h.fundingService.ListNeeds(c.UserContext(), filter, pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list school needs")
	}
	return pagination.Write(c, items, total)
}
