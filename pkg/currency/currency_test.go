package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{15_000_000, "₹1.5Cr"},
		{10_000_000, "₹1.0Cr"},
		{350_000, "₹3.5L"},
		{100_000, "₹1.0L"},
		{12_000, "₹12.0K"},
		{1_000, "₹1.0K"},
		{999, "₹999"},
		{500, "₹500"},
		{0, "₹0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(decimal.NewFromInt(tt.amount)), "amount %d", tt.amount)
	}
}

func TestFormat_Negative(t *testing.T) {
	assert.Equal(t, "-₹2.5K", Format(decimal.NewFromInt(-2_500)))
	assert.Equal(t, "-₹500", Format(decimal.NewFromInt(-500)))
}

func TestFormatFull_IndianGrouping(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{1_234_567, "₹12,34,567"},
		{12_345_678, "₹1,23,45,678"},
		{125_000, "₹1,25,000"},
		{1_234, "₹1,234"},
		{999, "₹999"},
		{0, "₹0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFull(decimal.NewFromInt(tt.amount)), "amount %d", tt.amount)
	}
}

func TestFormatFull_RoundsFractions(t *testing.T) {
	assert.Equal(t, "₹1,235", FormatFull(decimal.NewFromFloat(1234.6)))
	assert.Equal(t, "-₹1,000", FormatFull(decimal.NewFromInt(-1000)))
}
