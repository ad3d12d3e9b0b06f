package compose

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// Currency renders a value in the platform's standard money format, with
// thousands grouping and two decimals.
func Currency(v float64) string {
	return currencyPrinter.Sprintf("$%.2f", v)
}

// DayMonth renders a date as day and month abbreviation, e.g. "2 Jan".
func DayMonth(t time.Time) string {
	return t.Format("2 Jan")
}

// ClockTime renders the time of day, e.g. "3:04 PM".
func ClockTime(t time.Time) string {
	return t.Format("3:04 PM")
}
