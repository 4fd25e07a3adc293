package backup

import (
	"errors"

	"server-props/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for properties-file backups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backups")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleDownload)
	group.Delete("/:name", h.HandleDelete)
}

// HandleCreate snapshots the current properties file.
// @Summary Create backup
// @Description Stores a timestamped snapshot of server.properties in object storage.
// @Tags backups
// @Produce json
// @Success 201 {object} map[string]interface{} "Backup created"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /backups [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Create(c.Context())
	if err != nil {
		l.Error("Backup creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Could not create backup",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":   false,
		"message": "Backup created successfully",
		"backup":  info,
	})
}

// HandleList lists stored backups.
// @Summary List backups
// @Tags backups
// @Produce json
// @Success 200 {array} backup.Info
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /backups [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	backups, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Backup listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Could not list backups",
		})
	}
	return c.JSON(backups)
}

// HandleDownload returns one backup's content.
// @Summary Download backup
// @Tags backups
// @Produce plain
// @Param name path string true "Backup name"
// @Success 200 {string} string "Backup content"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /backups/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name := c.Params("name")

	content, err := h.service.Download(c.Context(), name)
	if errors.Is(err, ErrBadName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid backup name",
		})
	}
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Backup not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Could not download backup",
		})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(content)
}

// HandleDelete removes one backup.
// @Summary Delete backup
// @Tags backups
// @Produce json
// @Param name path string true "Backup name"
// @Success 200 {object} map[string]interface{} "Backup deleted"
// @Failure 400 {object} map[string]interface{} "Invalid name"
// @Router /backups/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	err := h.service.Delete(c.Context(), name)
	if errors.Is(err, ErrBadName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid backup name",
		})
	}
	if err != nil {
		l.Error("Backup deletion failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Could not delete backup",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Backup deleted successfully",
	})
}
