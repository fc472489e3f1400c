package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	latinPrinter  = message.NewPrinter(language.English)
	arabicPrinter = message.NewPrinter(language.Arabic)
)

// FormatAmount groups thousands the en-US way (150000 -> "150,000").
func FormatAmount(v float64) string {
	return latinPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatArabic formats with Arabic locale digits and separators.
func FormatArabic(v int) string {
	return arabicPrinter.Sprint(number.Decimal(v))
}

// FormatPercent renders a percentage with one decimal, without clamping.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
