package ticks

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Exponent returns the decimal exponent of |x| as used in scientific
// notation, so Exponent(1234) = 3 and Exponent(0.05) = −2.
func Exponent(x float64) int {
	x = math.Abs(x)
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	e, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		return 0
	}
	return e
}

// PrecisionFixed returns the number of fraction digits needed to print
// multiples of step: 0 for steps of 1 or more, 1 for 0.1..0.9, 2 for
// 0.01..0.09 and so on.
func PrecisionFixed(step float64) int {
	p := -Exponent(step)
	if p < 0 {
		return 0
	}
	return p
}

// FormatFixed renders x with precision fraction digits and thousands
// separators in the integer part.
func FormatFixed(x float64, precision int) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	if math.IsInf(x, 0) {
		if x < 0 {
			return "-Infinity"
		}
		return "Infinity"
	}
	s := strconv.FormatFloat(x, 'f', precision, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}
	if iv, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = humanize.Comma(iv)
	}
	if neg && strings.Trim(intPart+frac, "0.,") != "" {
		return "-" + intPart + frac
	}
	return intPart + frac
}

// Format returns a label formatter for the ticks of [start, stop] at count:
// every tick is printed with exactly the precision implied by the tick step.
func Format(start, stop float64, count int) func(float64) string {
	p := PrecisionFixed(TickStep(start, stop, count))
	return func(x float64) string { return FormatFixed(x, p) }
}
