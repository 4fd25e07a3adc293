package properties

import (
	"bytes"
	"encoding/json"
	"errors"

	"server-props/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for properties and categories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the property routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/server")
	group.Get("/properties", h.HandleGetProperties)
	group.Get("/properties/category/:categoryId", h.HandleGetPropertiesByCategory)
	group.Post("/properties/map", h.HandleMapConfiguration)
	group.Put("/properties", h.HandleUpdateProperties)
	group.Get("/properties/:id", h.HandleGetProperty)
	group.Patch("/properties/:id", h.HandlePatchProperty)
	group.Delete("/properties/:id", h.HandleDeleteProperty)
	group.Get("/categories", h.HandleGetCategories)
	group.Post("/categories", h.HandleCreateCategory)
}

// UpdateResponse is the batch-update response body.
type UpdateResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	UpdatedKeys   []string `json:"updatedKeys"`
	SkippedKeys   []string `json:"skippedKeys"`
	UnchangedKeys []string `json:"unchangedKeys"`
}

// HandleMapConfiguration triggers the import pass.
// @Summary Map server.properties into the catalog
// @Description Scans the flat config file, refreshing known properties and creating new ones with inferred types.
// @Tags properties
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Configuration mapped"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /server/properties/map [post]
func (h *Handler) HandleMapConfiguration(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.MapConfiguration(c.Context()); err != nil {
		l.Error("Configuration mapping failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Error reading or saving the configuration",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":   false,
		"message": "Configuration mapped and saved successfully",
	})
}

// HandleUpdateProperties applies a batch of validated key/value changes.
// @Summary Batch update property values
// @Description Validates each change against its property's type and constraints, patches the file and persists the catalog. The per-key breakdown is returned even when the pass fails.
// @Tags properties
// @Accept json
// @Produce json
// @Param batch body []properties.KeyValue true "Ordered key/value changes"
// @Success 200 {object} properties.UpdateResponse "Batch result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} properties.UpdateResponse "Batch failed"
// @Router /server/properties [put]
func (h *Handler) HandleUpdateProperties(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var changes []KeyValue
	if err := decodeStrict(c.Body(), &changes); err != nil {
		return badRequest(c, err.Error())
	}
	for i, change := range changes {
		if err := change.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":         true,
				"message":       err.Error(),
				"invalidValues": []any{i, change.Key},
			})
		}
	}

	report, err := h.service.UpdateProperties(c.Context(), changes)
	if err != nil && report == nil {
		l.Error("Update pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Error updating properties",
		})
	}
	if err != nil {
		// Rollback failure: the breakdown is still reported.
		l.Error("Update pass rollback failed", zap.Error(err))
	}

	resp := UpdateResponse{
		Success:       report.Success,
		Message:       report.Message,
		UpdatedKeys:   report.Keys(StatusUpdated),
		SkippedKeys:   report.Keys(StatusSkipped),
		UnchangedKeys: report.Keys(StatusUnchanged),
	}

	status := fiber.StatusOK
	if !report.Success {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(resp)
}

// HandleGetProperties lists all properties grouped by category.
// @Summary List properties
// @Description Returns every property in the catalog, grouped by category key.
// @Tags properties
// @Produce json
// @Success 200 {array} models.CategoryGroup "Grouped properties"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /server/properties [get]
func (h *Handler) HandleGetProperties(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	groups, err := h.service.GetProperties(c.Context())
	if err != nil {
		l.Error("Failed to list properties", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch server properties",
		})
	}
	return c.JSON(groups)
}

// HandleGetProperty returns a single property.
// @Summary Get property by id
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /server/properties/{id} [get]
func (h *Handler) HandleGetProperty(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid 'id' parameter")
	}

	prop, err := h.service.GetProperty(c.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c, "Server property not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch server property",
		})
	}
	return c.JSON(prop)
}

// HandlePatchProperty updates a property's metadata.
// @Summary Patch property metadata
// @Description Updates type, default, constraint data, category or flags. Unknown fields are rejected.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param patch body properties.PropertyPatch true "Fields to update"
// @Success 200 {object} models.Property
// @Failure 400 {object} map[string]interface{} "Invalid body"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /server/properties/{id} [patch]
func (h *Handler) HandlePatchProperty(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid 'id' parameter")
	}

	var patch PropertyPatch
	if err := decodeStrict(c.Body(), &patch); err != nil {
		return badRequest(c, err.Error())
	}
	if err := patch.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	prop, err := h.service.PatchProperty(c.Context(), id, patch)
	if errors.Is(err, ErrNotFound) {
		return notFound(c, "Server property not found")
	}
	if err != nil {
		l.Error("Failed to patch property", zap.Uint("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update server property",
		})
	}
	return c.JSON(prop)
}

// HandleDeleteProperty removes a property.
// @Summary Delete property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property "Deleted record"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /server/properties/{id} [delete]
func (h *Handler) HandleDeleteProperty(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid 'id' parameter")
	}

	prop, err := h.service.DeleteProperty(c.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c, "Server property not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete server property",
		})
	}
	return c.JSON(prop)
}

// HandleGetPropertiesByCategory lists the properties in one category.
// @Summary List properties by category
// @Tags properties
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} models.Property
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /server/properties/category/{categoryId} [get]
func (h *Handler) HandleGetPropertiesByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("categoryId")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid 'categoryId' parameter")
	}

	props, err := h.service.GetPropertiesByCategory(c.Context(), uint(id))
	if errors.Is(err, ErrNotFound) {
		return notFound(c, "Category not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch server properties",
		})
	}
	return c.JSON(props)
}

// HandleGetCategories lists all categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /server/categories [get]
func (h *Handler) HandleGetCategories(c *fiber.Ctx) error {
	cats, err := h.service.GetCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch server categories",
		})
	}
	return c.JSON(cats)
}

// HandleCreateCategory creates a category with a unique key.
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body properties.CategoryRequest true "Category to create"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]interface{} "Invalid body or duplicate key"
// @Router /server/categories [post]
func (h *Handler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	cat, err := h.service.CreateCategory(c.Context(), req.Key)
	if errors.Is(err, ErrDuplicateKey) {
		return badRequest(c, "Category with this key already exists")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// decodeStrict decodes JSON rejecting unknown fields.
func decodeStrict(body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": msg,
	})
}
