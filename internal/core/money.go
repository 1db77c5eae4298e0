// Package core provides money parsing and handling utilities.
//
// Monetary amounts are held as int64 cents so that aggregation over
// transactions stays exact; floats only appear at the display boundary.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxCommissionBp is 100% expressed in basis points.
const MaxCommissionBp int64 = 10000

// ParseDecimalToCents converts a decimal string to cents with proper rounding.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and performs
// half-up rounding on the third decimal place. Zero is a valid amount; signed
// input is rejected, so the result is always non-negative cents.
//
// Examples:
//
//	ParseDecimalToCents("12.34") -> 1234, nil
//	ParseDecimalToCents("12,34") -> 1234, nil
//	ParseDecimalToCents("12.345") -> 1234, nil (rounds down)
//	ParseDecimalToCents("12.346") -> 1235, nil (rounds up)
func ParseDecimalToCents(s string) (int64, error) {
	return parseNonNegativeCents(s, ErrInvalidAmount)
}

// ParsePercentToBasisPoints converts a percentage string (e.g. "20" or
// "12.5") to basis points, rejecting values outside 0-100.
func ParsePercentToBasisPoints(s string) (int64, error) {
	bp, err := parseNonNegativeCents(s, ErrInvalidRate)
	if err != nil {
		return 0, err
	}
	if bp > MaxCommissionBp {
		return 0, ErrInvalidRate
	}
	return bp, nil
}

func parseNonNegativeCents(s string, invalid error) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only unsigned values allowed
		return 0, invalid
	}
	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, invalid
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	// A bare separator carries no digits at all
	if intPart == "" && fracPart == "" {
		return 0, invalid
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, invalid
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, invalid
		}
	}
	// Convert integer part - check for overflow
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, invalid
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, invalid
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64 = 0
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 {
				if fracPart[2] >= '5' {
					fracCents++
				}
			}
		}
	}
	return iv*100 + fracCents, nil
}

// Units returns the amount in currency units as a float64 for display
// purposes. Use cents for calculations to avoid floating-point drift.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}
