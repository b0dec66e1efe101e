package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a textual amount into a finite float64.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}
	return amount, nil
}

// IsValidAmount reports whether raw is present, finite and strictly positive.
func IsValidAmount(raw *string) bool {
	if raw == nil {
		return false
	}
	amount, err := ParseAmount(*raw)
	if err != nil {
		return false
	}
	return amount > 0
}
