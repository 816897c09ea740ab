// Package mist converts between MIST, the smallest unit of the native
// currency, and the SUI display unit. The base-unit direction uses
// integer arithmetic only: the MIST amount is embedded in a
// transaction and a float rounding slip would under- or over-charge.
package mist

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MistPerSui is the fixed conversion factor between units.
const MistPerSui uint64 = 1_000_000_000

// mistDigits is the number of fractional digits one SUI carries.
const mistDigits = 9

// ErrInvalidPrice is returned when an input does not parse as a
// positive finite decimal number.
var ErrInvalidPrice = errors.New("invalid price")

// ToMist parses a display-unit amount and returns it in MIST,
// flooring any precision beyond nine fractional digits.
func ToMist(display string) (uint64, error) {
	s := strings.TrimSpace(display)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidPrice)
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}

	var whole uint64
	if intPart != "" {
		var err error
		whole, err = strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
		}
	}

	// Truncate (floor) past nine digits, pad short fractions.
	if len(fracPart) > mistDigits {
		fracPart = fracPart[:mistDigits]
	}
	fracPart += strings.Repeat("0", mistDigits-len(fracPart))
	frac, err := strconv.ParseUint(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}

	if whole > (math.MaxUint64-frac)/MistPerSui {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidPrice, display)
	}

	amount := whole*MistPerSui + frac
	if amount == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidPrice)
	}
	return amount, nil
}

// digitsOnly reports whether s contains only ASCII digits.
// The empty string passes; callers reject the all-empty case.
func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatSui renders a MIST amount in display units with fixed
// two-decimal precision, for summary views. Presentation only, so
// float formatting is acceptable here.
func FormatSui(amount uint64) string {
	return strconv.FormatFloat(float64(amount)/float64(MistPerSui), 'f', 2, 64)
}

// FormatSuiFull renders a MIST amount in display units at full
// precision, for detail views. Exact: ToMist(FormatSuiFull(n)) == n
// for every positive n.
func FormatSuiFull(amount uint64) string {
	whole := amount / MistPerSui
	frac := amount % MistPerSui
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%0*d", mistDigits, frac), "0")
	return strconv.FormatUint(whole, 10) + "." + fracStr
}
