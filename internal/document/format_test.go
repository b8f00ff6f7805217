package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "Rs 0.00"},
		{"three digits", "999", "Rs 999.00"},
		{"thousands", "1450", "Rs 1,450.00"},
		{"lakhs", "116000", "Rs 1,16,000.00"},
		{"crores", "12345678.9", "Rs 1,23,45,678.90"},
		{"negative", "-5000", "-Rs 5,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(decimal.RequireFromString(tt.amount)))
		})
	}
}
