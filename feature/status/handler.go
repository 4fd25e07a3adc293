package status

import (
	"server-props/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for game-server status.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/server", h.HandleGetInformation)
}

// HandleGetInformation returns live game-server information.
// @Summary Game server status
// @Description Queries the running game server and returns its name, version, player counts and latency.
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{} "Live server information"
// @Failure 503 {object} map[string]interface{} "Server unreachable"
// @Router /server [get]
func (h *Handler) HandleGetInformation(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.GetInformation(c.Context())
	if err != nil {
		l.Warn("Game server query failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   false,
			"message": "Cannot get the required information, server is down",
		})
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"message":     "Information successfully obtained",
		"information": info,
	})
}
