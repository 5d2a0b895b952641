package view

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders a monetary value as a localized USD amount, e.g. "$9.99".
func FormatPrice(v float64) string {
	return printer.Sprint(currency.NarrowSymbol(currency.USD.Amount(v)))
}

// FormatTimestamp renders a sale timestamp in the display locale.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 3:04:05 PM")
}
