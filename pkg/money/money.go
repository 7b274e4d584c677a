// Package money implements two-decimal currency arithmetic on int64 cents.
// Amounts are stored in cents everywhere in the service and only converted
// to decimals at the presentation edge.
package money

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a string cannot be read as a
// two-decimal currency amount.
var ErrInvalidAmount = errors.New("money: invalid amount")

// Parse reads a decimal string such as "70", "70.5" or "70.00" into cents.
// At most two fractional digits are accepted; anything else is rejected.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, ErrInvalidAmount
	}

	whole := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var f int64
	if frac != "" {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			f *= 10
		}
	}

	cents := w*100 + f
	if negative {
		cents = -cents
	}
	return cents, nil
}

// ParseNonNegative is Parse restricted to amounts >= 0, the rule applied to
// cash tendered at the register.
func ParseNonNegative(s string) (int64, error) {
	cents, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if cents < 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// FromFloat converts a decimal amount to cents, rounding half away from zero.
func FromFloat(amount float64) int64 {
	if amount < 0 {
		return -FromFloat(-amount)
	}
	return int64(amount*100 + 0.5)
}

// ToFloat converts cents to a decimal amount for JSON responses.
func ToFloat(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders cents as a plain two-decimal string, e.g. 6473 -> "64.73".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// CeilToUnit rounds cents up to the next multiple of the given whole-currency
// unit (unit is in currency units, not cents). CeilToUnit(6473, 1) == 6500,
// CeilToUnit(6473, 10) == 7000.
func CeilToUnit(cents, unit int64) int64 {
	if unit <= 0 {
		return cents
	}
	step := unit * 100
	if cents%step == 0 {
		return cents
	}
	if cents < 0 {
		return (cents / step) * step
	}
	return (cents/step + 1) * step
}
