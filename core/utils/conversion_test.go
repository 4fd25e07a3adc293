package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name   string
		val    any
		want   float64
		wantOK bool
	}{
		{"Float", 10.5, 10.5, true},
		{"Int", 42, 42, true},
		{"Numeric string", "3.14", 3.14, true},
		{"Signed string", "-7", -7, true},
		{"Partially numeric string", "10abc", 0, false},
		{"Empty string", "", 0, false},
		{"Bool", true, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Infinity", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.val)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"String", "survival", "survival"},
		{"Bool", true, "true"},
		{"Whole float", 20.0, "20"},
		{"Fractional float", 10.5, "10.5"},
		{"Large float stays plain", 10000000.0, "10000000"},
		{"Int", 7, "7"},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScalar(tt.val))
		})
	}
}
