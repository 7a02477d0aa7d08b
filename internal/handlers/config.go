package handlers

import (
	"rickorty/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ConfigHandler handles configuration API requests
type ConfigHandler struct {
	providerService *services.ProviderService
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(providerService *services.ProviderService) *ConfigHandler {
	return &ConfigHandler{
		providerService: providerService,
	}
}

// GetConfig returns provider API keys and endpoints for the game client
// GET /api/config
func (h *ConfigHandler) GetConfig(c *fiber.Ctx) error {
	// Any origin may read the config, with or without an Origin header
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.JSON(h.providerService.ConfigPayload())
}
