package handlers

import (
	"strconv"

	"schoolconnect/internal/adapters/http/middleware"
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/response"
	"schoolconnect/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CommunityHandler handles alumni, events, forum, bulletins, news and galleries
type CommunityHandler struct {
	communityService *services.CommunityService
	log              *zap.Logger
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communityService *services.CommunityService, log *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		log:              log,
	}
}

// ============================================================
// Alumni
// ============================================================

// CreateAlumni creates an alumni profile for the caller
// @Summary Create alumni profile
// @Tags Alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AlumniInput true "Profile"
// @Success 200 {object} models.AlumniProfile
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /alumni [post]
func (h *CommunityHandler) CreateAlumni(c *fiber.Ctx) error {
	var req services.AlumniInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.communityService.CreateAlumni(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create alumni profile")
	}
	return response.OK(c, profile)
}

// ListAlumni lists alumni profiles
// @Summary List alumni
// @Tags Alumni
// @Produce json
// @Param school_id query string false "School ID"
// @Param batch_year query int false "Batch year"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.AlumniProfile
// @Router /alumni [get]
func (h *CommunityHandler) ListAlumni(c *fiber.Ctx) error {
	filter := services.AlumniFilter{SchoolID: c.Query("school_id")}
	if raw := c.Query("batch_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(c, h.log, validation.NewError("batch_year", "batch_year must be an integer"), "Invalid batch year")
		}
		filter.BatchYear = year
	}

	items, total, err := h.communityService.ListAlumni(c.UserContext(), filter, pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list alumni")
	}
	return pagination.Write(c, items, total)
}

// ============================================================
// Events
// ============================================================

// CreateEvent creates an event organised by the caller
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EventInput true "Event"
// @Success 200 {object} models.Event
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /events [post]
func (h *CommunityHandler) CreateEvent(c *fiber.Ctx) error {
	var req services.EventInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.communityService.CreateEvent(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create event")
	}
	return response.OK(c, event)
}

// ListEvents lists events, latest event date first
// @Summary List events
// @Tags Events
// @Produce json
// @Param school_id query string false "School ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *CommunityHandler) ListEvents(c *fiber.Ctx) error {
	items, total, err := h.communityService.ListEvents(c.UserContext(), c.Query("school_id"), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list events")
	}
	return pagination.Write(c, items, total)
}

// ============================================================
// Forum
// ============================================================

// CreatePost creates a forum post authored by the caller
// @Summary Create forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PostInput true "Post"
// @Success 200 {object} models.ForumPost
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /forums/posts [post]
func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	var req services.PostInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	post, err := h.communityService.CreatePost(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create post")
	}
	return response.OK(c, post)
}

// ListPosts lists forum posts, newest first
// @Summary List forum posts
// @Tags Forum
// @Produce json
// @Param school_id query string false "School ID"
// @Param category query string false "Category"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.ForumPost
// @Router /forums/posts [get]
func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	filter := services.PostFilter{
		SchoolID: c.Query("school_id"),
		Category: c.Query("category"),
	}

	items, total, err := h.communityService.ListPosts(c.UserContext(), filter, pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list posts")
	}
	return pagination.Write(c, items, total)
}

// ============================================================
// Bulletins
// ============================================================

// CreateBulletin creates a bulletin
// @Summary Create bulletin
// @Tags Bulletins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.BulletinInput true "Bulletin"
// @Success 200 {object} models.Bulletin
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /bulletins [post]
func (h *CommunityHandler) CreateBulletin(c *fiber.Ctx) error {
	var req services.BulletinInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	bulletin, err := h.communityService.CreateBulletin(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create bulletin")
	}
	return response.OK(c, bulletin)
}

// ListBulletins lists bulletins, newest first
// @Summary List bulletins
// @Tags Bulletins
// @Produce json
// @Param school_id query string false "School ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.Bulletin
// @Router /bulletins [get]
func (h *CommunityHandler) ListBulletins(c *fiber.Ctx) error {
	items, total, err := h.communityService.ListBulletins(c.UserContext(), c.Query("school_id"), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list bulletins")
	}
	return pagination.Write(c, items, total)
}

// ============================================================
// News
// ============================================================

// CreateNews creates a news item
// @Summary Create news
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.NewsInput true "News"
// @Success 200 {object} models.NewsItem
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /news [post]
func (h *CommunityHandler) CreateNews(c *fiber.Ctx) error {
	var req services.NewsInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.communityService.CreateNews(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create news")
	}
	return response.OK(c, item)
}

// ListNews lists news, newest first
// @Summary List news
// @Tags News
// @Produce json
// @Param school_id query string false "School ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.NewsItem
// @Router /news [get]
func (h *CommunityHandler) ListNews(c *fiber.Ctx) error {
	items, total, err := h.communityService.ListNews(c.UserContext(), c.Query("school_id"), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list news")
	}
	return pagination.Write(c, items, total)
}

// ============================================================
// Galleries
// ============================================================

// CreateGallery creates a photo gallery
// @Summary Create gallery
// @Tags Galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.GalleryInput true "Gallery"
// @Success 200 {object} models.Gallery
// @Failure 401 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /galleries [post]
func (h *CommunityHandler) CreateGallery(c *fiber.Ctx) error {
	var req services.GalleryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	gallery, err := h.communityService.CreateGallery(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return handleError(c, h.log, err, "Failed to create gallery")
	}
	return response.OK(c, gallery)
}

// ListGalleries lists galleries, newest first
// @Summary List galleries
// @Tags Galleries
// @Produce json
// @Param school_id query string false "School ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} models.Gallery
// @Router /galleries [get]
func (h *CommunityHandler) ListGalleries(c *fiber.Ctx) error {
	items, total, err := h.communityService.ListGalleries(c.UserContext(), c.Query("school_id"), pagination.GetParams(c))
	if err != nil {
		return handleError(c, h.log, err, "Failed to list galleries")
	}
	return pagination.Write(c, items, total)
}
