package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseDuration safely parses duration string like "5s", falling back on
// empty or bad input
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if d == "" {
		return fallback
	}
	duration, err := time.ParseDuration(d)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

// ParseDecimal parses a plain decimal number such as "3.10" or "412".
// Thousands separators are not accepted.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty number")
	}
	return decimal.NewFromString(s)
}

// Float converts a decimal for places that need a float64 (sqlite REAL columns).
func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
