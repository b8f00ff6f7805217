package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDecimalInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain integer", "1450", "1450"},
		{"plain decimal", "10.5", "10.5"},
		{"extra separator collapses to first", "10.5.5", "10.55"},
		{"clamps fractional digits", "10.559", "10.55"},
		{"strips non-numeric characters", "Rs 1,450/-", "1450"},
		{"leading separator kept", ".75", ".75"},
		{"empty", "", ""},
		{"only junk", "abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeDecimalInput(tt.raw))
		})
	}
}

func TestParseDecimalInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer", "1450", "1450"},
		{"decimal", "10.55", "10.55"},
		{"extra separator", "10.5.5", "10.55"},
		{"empty parses to zero", "", "0"},
		{"bare separator parses to zero", ".", "0"},
		{"junk-only parses to zero", "abc", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalInput(tt.raw)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, "1450.56", RoundCurrency(decimal.RequireFromString("1450.555")).String())
	assert.Equal(t, "1450.55", RoundCurrency(decimal.RequireFromString("1450.554")).String())
}
