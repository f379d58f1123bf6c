// Package cli provides the command-line interface for the pricing application.
package cli

import (
	"fmt"

	"options-pricer/internal/models"
)

// FormatPrice formats a price with appropriate decimal places.
func FormatPrice(price float64) string {
	if price >= 10 {
		return fmt.Sprintf("$%.4f", price)
	}
	return fmt.Sprintf("$%.6f", price)
}

// FormatGreek formats a Greek value.
func FormatGreek(value float64) string {
	return fmt.Sprintf("%.4f", value)
}

// FormatPercent formats a fraction as a percentage.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value*100)
}

// FormatInterval formats a confidence interval.
func FormatInterval(r models.SimulationResult) string {
	return fmt.Sprintf("[%s, %s]", FormatPrice(r.Lower), FormatPrice(r.Upper))
}

// FormatCount formats a simulation count with thousands separators.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}
	return out
}
