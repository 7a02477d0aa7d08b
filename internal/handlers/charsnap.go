package handlers

import (
	"errors"
	"log"

	"rickorty/internal/logging"
	"rickorty/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CharSnapHandler relays chat payloads to the CharSnap upstream
type CharSnapHandler struct {
	charSnapService *services.CharSnapService
}

// NewCharSnapHandler creates a new CharSnap proxy handler
func NewCharSnapHandler(charSnapService *services.CharSnapService) *CharSnapHandler {
	return &CharSnapHandler{charSnapService: charSnapService}
}

// Proxy handles POST /api/charsnap
func (h *CharSnapHandler) Proxy(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

	// c.Body() is only valid for the lifetime of the handler
	payload := append([]byte(nil), c.Body()...)

	requestID, _ := c.Locals("requestid").(string)
	logger := logging.WithRequest(requestID, c.Method(), c.Path())

	resp, err := h.charSnapService.Forward(c.UserContext(), payload)
	if err != nil {
		if errors.Is(err, services.ErrUpstreamUnavailable) {
			logger.Warn("charsnap upstream unavailable", "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "upstream unavailable",
			})
		}
		log.Printf("❌ [CHARSNAP] Proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to forward request",
		})
	}

	logger.Debug("charsnap response relayed", "status", resp.StatusCode, "bytes", len(resp.Body))

	if resp.ContentType != "" {
		c.Set(fiber.HeaderContentType, resp.ContentType)
	} else {
		// Relay the absence too, instead of fasthttp's text/plain default
		c.Response().Header.SetNoDefaultContentType(true)
	}
	return c.Status(resp.StatusCode).Send(resp.Body)
}
