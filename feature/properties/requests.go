package properties

import (
	"encoding/json"

	"server-props/feature/properties/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks one batch-update item's shape. Type and constraint checks
// run later, inside the update pass.
func (kv KeyValue) Validate() error {
	return validation.ValidateStruct(&kv,
		validation.Field(&kv.Key, validation.Required),
		validation.Field(&kv.Value, validation.NotNil),
	)
}

// PropertyPatch is the body of PATCH /server/properties/:id. Every field is
// optional; unknown fields are rejected at decode time.
type PropertyPatch struct {
	Type         *string                `json:"type"`
	Default      any                    `json:"default"`
	Data         *models.ConstraintData `json:"data"`
	Category     *uint                  `json:"category"`
	IsConfigured *bool                  `json:"isConfigured"`
	IsArray      *bool                  `json:"isArray"`
}

// Validate checks the patch's shape.
func (p PropertyPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.In(
			string(models.TypeString),
			string(models.TypeBool),
			string(models.TypeNumber),
			string(models.TypeUnknown),
		)),
	)
}

// columns maps the set fields onto catalog column updates.
func (p PropertyPatch) columns() (map[string]any, error) {
	cols := make(map[string]any)
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	if p.Default != nil {
		raw, err := json.Marshal(p.Default)
		if err != nil {
			return nil, err
		}
		cols["default"] = raw
	}
	if p.Data != nil {
		raw, err := json.Marshal(p.Data)
		if err != nil {
			return nil, err
		}
		cols["data"] = raw
	}
	if p.Category != nil {
		cols["category_id"] = *p.Category
	}
	if p.IsConfigured != nil {
		cols["is_configured"] = *p.IsConfigured
	}
	if p.IsArray != nil {
		cols["is_array"] = *p.IsArray
	}
	return cols, nil
}

// CategoryRequest is the body of POST /server/categories.
type CategoryRequest struct {
	Key string `json:"key"`
}

// Validate checks the category request's shape.
func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key, validation.Required),
	)
}
