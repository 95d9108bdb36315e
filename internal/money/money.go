// Package money formats and computes rupee amounts. Prices are stored
// as whole-rupee integers; decimal arithmetic is only used where a
// fraction appears (tax).
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount as "₹1,234" with thousands separators.
func Format(amount int64) string {
	return "₹" + group(amount)
}

func group(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Tax returns rate applied to amount, rounded to the nearest rupee.
func Tax(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}
