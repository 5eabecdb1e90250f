package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trailing zero stripped", input: "100.50", want: "100.5"},
		{name: "whole amount loses point", input: "100.00", want: "100"},
		{name: "two significant decimals kept", input: "99.95", want: "99.95"},
		{name: "integer unchanged", input: "250", want: "250"},
		{name: "sub-unit amount", input: "0.10", want: "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.input)
			assert.Equal(t, tt.want, FormatAmount(d))
		})
	}
}

func TestFormatAmountMatchesFloatConstruction(t *testing.T) {
	// The hash input must render identically whether the amount came from a
	// string or a float
	fromFloat := decimal.NewFromFloat(100.5)
	fromString := decimal.RequireFromString("100.50")
	assert.Equal(t, FormatAmount(fromString), FormatAmount(fromFloat))
}
