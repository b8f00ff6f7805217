package types

import (
	"strings"

	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
)

// CurrencyPrecision is the number of fractional digits stored for INR
// amounts and for derived areas.
const CurrencyPrecision = 2

// SanitizeDecimalInput normalizes a raw numeric text-field value: keeps
// digits and at most one decimal separator (extra separators collapse to
// the first), and clamps to two fractional digits. The returned string is
// what gets stored, matching what the inline editors commit.
func SanitizeDecimalInput(raw string) string {
	var b strings.Builder
	seenSep := false
	fractional := -1
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if fractional >= CurrencyPrecision {
				continue
			}
			b.WriteRune(r)
			if fractional >= 0 {
				fractional++
			}
		case r == '.' && !seenSep:
			seenSep = true
			fractional = 0
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDecimalInput sanitizes and parses a numeric text-field value. Empty
// input parses to zero; anything that still fails to parse after
// sanitization is a validation error.
func ParseDecimalInput(raw string) (decimal.Decimal, error) {
	s := SanitizeDecimalInput(raw)
	if s == "" || s == "." {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHint("Value must be a number with at most two decimal places").
			WithReportableDetails(map[string]interface{}{
				"input": raw,
			}).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

// RoundCurrency rounds an amount to the stored currency precision.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPrecision)
}

// RoundArea rounds a derived sqft/area value to two decimal places.
func RoundArea(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
