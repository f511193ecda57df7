package domain

import (
	"strconv"
	"strings"
)

// Currency carries the locale formatting rules for one order currency.
type Currency struct {
	Code           string
	SymbolLeft     string
	SymbolRight    string
	DecimalPlaces  int
	DecimalPoint   string
	ThousandsPoint string
}

// FormatAmount renders value the way the storefront displays totals:
// left symbol, grouped integer part, configured decimal separator.
func (c *Currency) FormatAmount(value float64) string {
	places := c.DecimalPlaces
	if places < 0 {
		places = 2
	}

	fixed := strconv.FormatFloat(value, 'f', places, 64)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.Index(fixed, "."); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteString(c.ThousandsPoint)
		}
		grouped.WriteRune(d)
	}

	var out strings.Builder
	if neg {
		out.WriteString("-")
	}
	out.WriteString(c.SymbolLeft)
	out.WriteString(grouped.String())
	if places > 0 {
		out.WriteString(c.DecimalPoint)
		out.WriteString(fracPart)
	}
	out.WriteString(c.SymbolRight)
	return out.String()
}
