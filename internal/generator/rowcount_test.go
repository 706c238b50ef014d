package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRowCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"5000", 5000},
		{"  42 ", 42},
		{"12.9", 12},
		{"12 rows", 12},
		{"+7", 7},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-5", 1},
		{"-", 1},
		{"-99999999999999999999999", 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseRowCount(tc.raw), "raw %q", tc.raw)
	}
}

func TestParseRowCountSaturates(t *testing.T) {
	assert.Equal(t, int(^uint(0)>>1), ParseRowCount("99999999999999999999999"))
}

func TestNormalizeRowCount(t *testing.T) {
	assert.Equal(t, 1, NormalizeRowCount(-3))
	assert.Equal(t, 1, NormalizeRowCount(0))
	assert.Equal(t, 10, NormalizeRowCount(10))
}
