package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToQty(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 5, 5},
		{"Int64", int64(12), 12},
		{"Float", 7.9, 7},
		{"NumericString", "42", 42},
		{"PaddedString", "  3 ", 3},
		{"DecimalString", "2.5", 2},
		{"Garbage", "abc", 0},
		{"Empty", "", 0},
		{"Nil", nil, 0},
		{"Negative", -4, 0},
		{"NegativeString", "-10", 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
		{"Bytes", []byte("9"), 9},
		{"True", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToQty(tt.in))
		})
	}
}
