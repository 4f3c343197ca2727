package utils

import (
	"fmt"
	"math"
	"strings"
)

var wordsBelowTwenty = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var wordsTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells a number in the Indian system (Thousand, Lakh,
// Crore). Zero spells as the empty string; callers add their own unit.
func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return wordsBelowTwenty[num]
	case num < 100:
		return strings.TrimSpace(wordsTens[num/10] + " " + wordsBelowTwenty[num%10])
	case num < 1000:
		return joinScale(num, 100, "Hundred")
	case num < 100000:
		return joinScale(num, 1000, "Thousand")
	case num < 10000000:
		return joinScale(num, 100000, "Lakh")
	default:
		return joinScale(num, 10000000, "Crore")
	}
}

func joinScale(num, scale int, label string) string {
	head := NumberToWords(num/scale) + " " + label
	if rem := num % scale; rem != 0 {
		return head + " " + NumberToWords(rem)
	}
	return head
}

// NumberToCurrencyWords renders rupees and paise, e.g.
// "Two Thousand Six Hundred Rupees Only".
func NumberToCurrencyWords(amount float64) string {
	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))

	var parts []string
	if rupees > 0 {
		parts = append(parts, fmt.Sprintf("%s Rupees", strings.TrimSpace(NumberToWords(rupees))))
	}
	if paise > 0 {
		parts = append(parts, fmt.Sprintf("%s Paise", strings.TrimSpace(NumberToWords(paise))))
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
