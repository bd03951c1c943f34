package model

import (
	"fmt"
	"strconv"
	"strings"
)

// currencySuffix is appended to every formatted price (Algerian dinar).
const currencySuffix = " DA"

// FormatPrice renders a price for display: two decimals, comma-grouped
// thousands, currency suffix. 1234.5 -> "1,234.50 DA".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	b.WriteString(currencySuffix)
	return b.String()
}

// ParsePrice reads a price back out of a display string, tolerating the
// currency suffix, grouping commas, and surrounding whitespace.
func ParsePrice(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, currencySuffix)
	cleaned = strings.TrimSuffix(cleaned, strings.TrimSpace(currencySuffix))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return price, nil
}
