package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatCurrency renders a whole-dollar amount with thousands
// separators, no currency symbol.
func formatCurrency(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
