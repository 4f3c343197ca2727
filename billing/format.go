package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value with Indian digit grouping
// (12,34,567). Whole amounts carry no decimals; fractional amounts
// keep two.
func FormatAmount(v float64) string {
	neg := v < 0

	// Round to cents on the decimal form so a fraction that rounds up
	// to a full unit (1.999) carries into the whole part instead of
	// wrapping to .00.
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	wholePart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		wholePart, fracPart = s[:i], s[i+1:]
	}

	whole, _ := strconv.ParseInt(wholePart, 10, 64)
	cents := 0
	if fracPart != "" {
		padded := (fracPart + "000")[:3]
		cents, _ = strconv.Atoi(padded[:2])
		if padded[2] >= '5' {
			cents++
		}
		if cents == 100 {
			cents = 0
			whole++
		}
	}

	out := groupIndian(strconv.FormatInt(whole, 10))
	if cents > 0 {
		out += fmt.Sprintf(".%02d", cents)
	}
	if neg && (whole != 0 || cents != 0) {
		out = "-" + out
	}
	return out
}

// groupIndian inserts separators after the last three digits and then
// every two: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
