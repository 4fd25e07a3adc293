package properties

import (
	"regexp"
	"slices"
	"unicode/utf8"

	"server-props/core/utils"
	"server-props/feature/properties/models"
)

// Validate reports whether candidate is an acceptable new value for the
// property's declared type and constraint data. Sub-checks are AND-combined;
// the first failing check rejects the candidate.
func Validate(prop *models.Property, candidate any) bool {
	data, err := prop.Constraints()
	if err != nil {
		return false
	}

	switch prop.Type {
	case models.TypeString:
		return validString(data, prop.IsArray, candidate)
	case models.TypeBool:
		_, ok := candidate.(bool)
		return ok
	case models.TypeNumber:
		return validNumber(data, candidate)
	default:
		// unknown properties can only be changed by re-import
		return false
	}
}

func validString(data *models.ConstraintData, isArray bool, candidate any) bool {
	s, ok := candidate.(string)
	if !ok {
		return false
	}
	if data == nil {
		return true
	}

	if data.Regex != nil {
		re, err := regexp.Compile(*data.Regex)
		if err != nil || !re.MatchString(s) {
			return false
		}
	}

	if data.Range != nil && data.Range.Min != nil && data.Range.Max != nil {
		length := float64(utf8.RuneCountInString(s))
		if length < *data.Range.Min || length > *data.Range.Max {
			return false
		}
	}

	if data.AllowUserInput != nil && !*data.AllowUserInput && isArray && data.Values != nil {
		if !slices.Contains(data.Values, s) {
			return false
		}
	}

	return true
}

func validNumber(data *models.ConstraintData, candidate any) bool {
	f, ok := utils.ToFloat(candidate)
	if !ok {
		return false
	}

	if data != nil && data.Range != nil && data.Range.Min != nil && data.Range.Max != nil {
		return f >= *data.Range.Min && f <= *data.Range.Max
	}
	return true
}
