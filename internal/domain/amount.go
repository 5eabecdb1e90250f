package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount in the canonical wire form: plain
// decimal notation with trailing fractional zeros and a bare trailing point
// stripped ("100.50" -> "100.5", "100.00" -> "100"). The same rendering feeds
// both the CC5Request Amount element and the 3-D Secure hash input, so the
// rule must never change without re-verifying hash compatibility with the
// gateway.
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// validAmount reports whether d is a positive amount with at most two
// significant fractional digits.
func validAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(2))
}
