// Package money renders salary amounts for the console.
//
// Grouping follows English conventions (comma thousands separator, dot
// decimal separator) regardless of the host locale, so listings are stable
// across machines.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Grouped formats v with thousands separators and exactly two decimals.
// Cents are rounded half away from zero on the shortest decimal form of v,
// so 0.125 renders as "0.13" and 1.005 as "1.01".
//
//	Grouped(1234.5)  // "1,234.50"
//	Grouped(-5)      // "-5.00"
func Grouped(v float64) string {
	return printer.Sprintf("%.2f", roundCents(v))
}

// Currency formats v as a dollar amount: "$1,234.50".
// Negative amounts keep the sign after the symbol ("$-5.00").
func Currency(v float64) string {
	return "$" + Grouped(v)
}

// Diagnostic formats v the way record descriptions print it: grouped, two
// decimals and a trailing "-" terminator ("1,234.50-").
func Diagnostic(v float64) string {
	return Grouped(v) + "-"
}

// roundCents rounds v to two decimals, half away from zero, using the
// shortest decimal representation of v rather than its binary value.
func roundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= 2 {
		return v
	}

	cents, err := strconv.ParseInt(whole+frac[:2], 10, 64)
	if err != nil {
		return v
	}
	if frac[2] >= '5' {
		cents++
	}
	return math.Copysign(float64(cents)/100, v)
}
