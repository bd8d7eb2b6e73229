package repository

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseNumeric converts a numeric column's decimal-string representation
// into a float64. The store keeps money and area as arbitrary-precision
// decimals; arithmetic in the application runs on float64, so the
// conversion happens exactly once, here.
func parseNumeric(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// formatNumeric renders a float64 as the decimal string a numeric
// column expects, the mirror image of parseNumeric.
func formatNumeric(v float64) string {
	return decimal.NewFromFloat(v).String()
}
