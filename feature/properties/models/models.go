package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// PropertyType classifies how a property's value is validated.
type PropertyType string

const (
	TypeString  PropertyType = "string"
	TypeBool    PropertyType = "bool"
	TypeNumber  PropertyType = "number"
	TypeUnknown PropertyType = "unknown"
)

// Category groups properties for presentation.
type Category struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Key string `gorm:"uniqueIndex;not null" json:"key"`
}

// TableName specifies the table name for Category.
func (Category) TableName() string {
	return "server_property_categories"
}

// Property is a single named, typed, validated configuration setting tracked
// in the catalog. Default, Value and Data are stored as JSON so the columns
// keep the string/number/bool distinction that validation depends on.
type Property struct {
	ID   uint         `gorm:"primaryKey" json:"id"`
	Key  string       `gorm:"uniqueIndex;not null" json:"key"`
	Type PropertyType `gorm:"type:varchar(16);not null" json:"type"`

	// Default is the value captured at first import. It is never rewritten
	// by the reconciliation paths.
	Default datatypes.JSON `json:"default"`

	// Value is the current effective value, mutated only through validated
	// updates or re-import.
	Value datatypes.JSON `json:"value"`

	// Data optionally carries the ConstraintData payload.
	Data datatypes.JSON `json:"data"`

	CategoryID uint      `json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// IsConfigured marks values explicitly set since import. The
	// reconciliation paths never flip it; the setup frontend does.
	IsConfigured bool `gorm:"default:false" json:"isConfigured"`

	// IsArray marks Data.Values as an enumerated closed set.
	IsArray bool `gorm:"default:false" json:"isArray"`
}

// TableName specifies the table name for Property.
func (Property) TableName() string {
	return "server_properties"
}

// CategoryGroup is one category's worth of properties in a grouped listing.
type CategoryGroup struct {
	Category   string     `json:"category"`
	Properties []Property `json:"properties"`
}

// ConstraintData is the optional constraint payload attached to a property.
// Which fields apply depends on the property type.
type ConstraintData struct {
	// Regex must match string candidates (unanchored).
	Regex *string `json:"regex"`
	// Range bounds a string's length or a number's value, inclusive.
	// Both bounds must be set for the check to apply.
	Range *Range `json:"range"`
	// AllowUserInput, when explicitly false, restricts string candidates to
	// Values for array properties.
	AllowUserInput *bool `json:"allowUserInput"`
	// Values is the closed set of accepted strings for array properties.
	Values []string `json:"values"`
}

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// DecodeValue returns the current value as a native scalar
// (string, float64, bool or nil).
func (p *Property) DecodeValue() (any, error) {
	return decodeJSON(p.Value)
}

// SetValue replaces the current value with the JSON encoding of v.
func (p *Property) SetValue(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.Value = datatypes.JSON(raw)
	return nil
}

// SetDefault captures the import-time default. Called once at creation.
func (p *Property) SetDefault(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.Default = datatypes.JSON(raw)
	return nil
}

// Constraints decodes the constraint payload, or returns nil when the
// property has none.
func (p *Property) Constraints() (*ConstraintData, error) {
	if len(p.Data) == 0 || string(p.Data) == "null" {
		return nil, nil
	}
	var data ConstraintData
	if err := json.Unmarshal(p.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SetConstraints replaces the constraint payload. A nil value clears it.
func (p *Property) SetConstraints(data *ConstraintData) error {
	if data == nil {
		p.Data = nil
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	p.Data = datatypes.JSON(raw)
	return nil
}

func decodeJSON(raw datatypes.JSON) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
