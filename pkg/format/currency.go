// Package format renders amounts and loan terms for display.
package format

import (
	"math"
	"strconv"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// exactFractionDigits is enough fractional digits to print any float64
// without rounding; the smallest subnormal is 2^-1074.
const exactFractionDigits = 1074

// CurrencyFormatter prefixes rounded amounts with a currency symbol.
type CurrencyFormatter struct {
	Symbol   string
	Decimals int
}

// DefaultCurrency is the pound sterling formatter with two decimals.
var DefaultCurrency = CurrencyFormatter{
	Symbol:   constants.DefaultCurrencySymbol,
	Decimals: constants.DefaultDecimalPlaces,
}

// NewCurrencyFormatter returns a formatter for symbol with decimals clamped
// to the supported range.
func NewCurrencyFormatter(symbol string, decimals int) CurrencyFormatter {
	return CurrencyFormatter{Symbol: symbol, Decimals: clampDecimals(decimals)}
}

// Format renders value with the formatter's symbol and decimal places.
func (f CurrencyFormatter) Format(value float64) string {
	return f.Symbol + FixedDecimal(value, f.Decimals)
}

// FormatWithDecimals renders value with the formatter's symbol and an
// explicit number of decimal places.
func (f CurrencyFormatter) FormatWithDecimals(value float64, decimals int) string {
	return f.Symbol + FixedDecimal(value, decimals)
}

// FormatCurrency returns value as a pound amount with two decimals (e.g. "£1000.00").
func FormatCurrency(value float64) string {
	return DefaultCurrency.Format(value)
}

// Currency returns value as a pound amount with the given decimals. A
// negative value keeps its sign after the symbol (e.g. "£-100.00").
func Currency(value float64, decimals int) string {
	return DefaultCurrency.FormatWithDecimals(value, decimals)
}

// FixedDecimal renders value with exactly decimals fractional digits and no
// thousands separators. Rounding is half away from zero on the exact binary
// value, so 10.125 gives "10.13" while 1.005 (stored as 1.00499...) gives
// "1.00". decimals outside [0, 100] is clamped; 0 omits the decimal point.
func FixedDecimal(value float64, decimals int) string {
	decimals = clampDecimals(decimals)

	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	exact, err := decimal.NewFromString(strconv.FormatFloat(value, 'f', exactFractionDigits, 64))
	if err != nil {
		return sign + strconv.FormatFloat(value, 'f', decimals, 64)
	}
	return sign + exact.StringFixed(int32(decimals))
}

func clampDecimals(decimals int) int {
	if decimals < 0 {
		return 0
	}
	if decimals > constants.MaxDecimalPlaces {
		return constants.MaxDecimalPlaces
	}
	return decimals
}
