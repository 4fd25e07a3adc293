package utils

import (
	"fmt"
	"math"
	"strconv"
)

// ToFloat converts scalar types to float64 using explicit type switching.
// It reports false for non-numeric values, partially numeric strings, NaN
// and infinities.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return ToFloat(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return ToFloat(f)
	case []byte:
		return ToFloat(string(v))
	default:
		return 0, false
	}
}

// FormatScalar renders a scalar value the way it should appear on the right
// side of a key=value line. Floats drop their trailing zeros so 20.0 becomes
// "20" and 10.5 stays "10.5".
func FormatScalar(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
