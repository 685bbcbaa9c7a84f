// Package format renders numbers as text for value labels and popups.
//
// Labels use digit grouping ("1,234"); popups show the raw value ("1234").
// The two are kept on separate code paths so a popup never shows a rounded
// or grouped number.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Grouped formats v with thousands separators, e.g. 1234.5 as "1,234.5".
// Every fraction digit of the shortest exact form is kept.
func Grouped(v float64) string {
	return message.NewPrinter(language.English).Sprint(
		number.Decimal(v, number.MaxFractionDigits(fractionDigits(v))))
}

// fractionDigits counts the digits after the point in Raw(v).
func fractionDigits(v float64) int {
	raw := Raw(v)
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		return len(raw) - i - 1
	}
	return 0
}

// Raw formats v in its shortest exact decimal form, e.g. 1234 as "1234".
func Raw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
