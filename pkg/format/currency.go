// Package format provides currency string formatting helpers.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Rupee returns an Indian-system currency string with a rupee sign and
// lakh/crore separators (e.g., "-₹12,34,567.89").
func Rupee(amount float64) string {
	formatted := formatPositiveRupee(math.Abs(amount))
	if amount < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// NumericRupee returns a currency string without a currency symbol but with
// Indian-system separators (e.g., "-12,34,567.89").
func NumericRupee(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveRupee(math.Abs(amount))
}

// Compact returns a shortened currency figure using lakh/crore units
// (e.g., "₹1.66 Cr", "₹57.60 L"), falling back to Rupee below one lakh.
func Compact(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("%s₹%.2f Cr", sign, abs/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("%s₹%.2f L", sign, abs/1e5)
	default:
		return Rupee(amount)
	}
}

func formatPositiveRupee(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}
	return groupIndian(intPart) + "." + decPart
}

// groupIndian applies the Indian digit-grouping rule: the last three digits
// form one group, every preceding pair forms another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var builder strings.Builder
	offset := len(head) % 2
	for i, digit := range head {
		if i > 0 && (i-offset)%2 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String() + "," + tail
}
