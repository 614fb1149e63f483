package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// PlaceholderHandler serves features that are announced but not built yet
type PlaceholderHandler struct{}

// NewPlaceholderHandler creates a new placeholder handler
func NewPlaceholderHandler() *PlaceholderHandler {
	return &PlaceholderHandler{}
}

// Conversations is the chat placeholder
// @Summary Chat conversations
// @Tags Placeholders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /chat/conversations [get]
func (h *PlaceholderHandler) Conversations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":       "Chat feature - Coming soon",
		"conversations": []interface{}{},
	})
}

// Mentors is the mentoring placeholder
// @Summary Mentors
// @Tags Placeholders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /mentors [get]
func (h *PlaceholderHandler) Mentors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Mentoring feature - Coming soon",
		"mentors": []interface{}{},
	})
}

// Notifications is the notification placeholder
// @Summary Notifications
// @Tags Placeholders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /notifications [get]
func (h *PlaceholderHandler) Notifications(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":       "Notification system - Coming soon",
		"notifications": []interface{}{},
	})
}
