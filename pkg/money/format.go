// Package money formatea montos para mostrar (formato fijo: rupias, sin decimales).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format redondea a unidades y aplica la agrupación de en-IN, ej: 1234567 → "₹12,34,567".
func Format(amount decimal.Decimal) string {
	return format("₹", amount)
}

// FormatCode igual que Format pero con el código ISO en lugar del símbolo, para fuentes
// sin el glifo ₹ (PDF con fuentes estándar). Ej: "INR 12,34,567".
func FormatCode(amount decimal.Decimal) string {
	return format("INR ", amount)
}

func format(prefix string, amount decimal.Decimal) string {
	units := amount.Round(0).IntPart()
	if units < 0 {
		return "-" + prefix + printer.Sprint(number.Decimal(-units))
	}
	return prefix + printer.Sprint(number.Decimal(units))
}
