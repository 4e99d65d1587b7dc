package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber renders n with comma thousands separators
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
