package utility

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMoneySafe(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"1.50", "1.5"},
		{"$2.00", "2"},
		{"$1,234.56", "1234.56"},
		{" 3.25 ", "3.25"},
		{"-0.10", "-0.1"},
	}
	for _, tc := range cases {
		got := ParseMoneySafe(tc.input, decimal.Zero)
		assert.Equal(t, tc.expected, got.String(), "input %q", tc.input)
	}

	fallback := decimal.NewFromInt(100)
	assert.True(t, ParseMoneySafe("", fallback).Equal(fallback), "Chuỗi rỗng phải về fallback")
	assert.True(t, ParseMoneySafe("abc", fallback).Equal(fallback), "Chuỗi hỏng phải về fallback")
}

func TestParseIntSafe(t *testing.T) {
	assert.Equal(t, 42, ParseIntSafe("42", 0))
	assert.Equal(t, 7, ParseIntSafe(" 7 ", 0))
	assert.Equal(t, 0, ParseIntSafe("abc", 0))
	assert.Equal(t, 5, ParseIntSafe("", 5))
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"a", "", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got, "Phải bỏ chuỗi rỗng và trùng lặp, giữ thứ tự")
}
