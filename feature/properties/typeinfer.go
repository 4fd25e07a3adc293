package properties

import (
	"server-props/core/utils"
	"server-props/feature/properties/models"
)

// InferType classifies a raw file value into a property type. It runs only
// when the import pass creates a new property; existing properties keep the
// type they were created with.
func InferType(raw string) models.PropertyType {
	switch raw {
	case "":
		return models.TypeUnknown
	case "true", "false":
		return models.TypeBool
	}
	if _, ok := utils.ToFloat(raw); ok {
		return models.TypeNumber
	}
	return models.TypeString
}
