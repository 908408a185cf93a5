package utils_test

import (
	"testing"

	"fabric-index/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"String", "abc", "abc"},
		{"Bytes", []byte("abc"), "abc"},
		{"Nil", nil, ""},
		{"Int", 42, "42"},
		{"Float", 42.5, "42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToString(tt.val))
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want float64
	}{
		{"Float64", 42.5, 42.5},
		{"Int", 7, 7},
		{"NumericString", "42.5", 42.5},
		{"PaddedString", " 9 ", 9},
		{"Unparseable", "N/A", 0},
		{"Empty", "", 0},
		{"Nil", nil, 0},
		{"Bytes", []byte("1.25"), 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToFloat64(tt.val))
		})
	}
}
