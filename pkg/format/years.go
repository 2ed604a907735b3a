package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-calculator/pkg/constants"
)

// Years renders a loan term. A value with a fractional part of exactly 0.5
// becomes the whole years followed by a half symbol ("2 ½"); anything else
// is the shortest plain decimal form ("2", "2.25"), switching to exponent
// form below 1e-6 and from 1e21 up. Negative halves keep their plain form
// since their remainder is -0.5.
func Years(value float64) string {
	if math.Mod(value, 1) == 0.5 {
		return strconv.FormatFloat(math.Floor(value), 'f', -1, 64) + " " + constants.HalfYearSymbol
	}
	return plainNumber(value)
}

// YearsLabel renders a term followed by the years suffix (e.g. "2 ½ years").
func YearsLabel(value float64) string {
	return Years(value) + constants.LabelYearsSuffix
}

// Percentage renders a rate in percent with no forced decimals (e.g. "10%").
func Percentage(value float64) string {
	return plainNumber(value) + "%"
}

func plainNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		// Negative zero renders as "0".
		return "0"
	}
	if magnitude := math.Abs(value); magnitude < 1e-6 || magnitude >= 1e21 {
		return exponentNumber(value)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// exponentNumber renders value in the shortest exponent form with an
// explicit exponent sign and no exponent padding ("1e-7", "1.5e+21").
func exponentNumber(value float64) string {
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
