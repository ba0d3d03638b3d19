// Package format renders money and pay rates the way the Romanian UI shows
// them.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"campus-helper/internal/domain"
)

var printer = message.NewPrinter(language.Romanian)

// CurrencyRON formats v with Romanian digit grouping, no decimals and a RON
// suffix. Non-finite values render as zero.
func CurrencyRON(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return printer.Sprintf("%d RON", int64(math.Round(v)))
}

func PayTypeSuffix(payType domain.PayType) string {
	switch payType {
	case domain.PayHourly:
		return "/oră"
	case domain.PayFixed:
		return "/proiect"
	case domain.PayNegotiable:
		return "/negociabil"
	default:
		return ""
	}
}

func PayRate(v float64, payType domain.PayType) string {
	suffix := PayTypeSuffix(payType)
	if suffix == "" {
		return CurrencyRON(v)
	}
	return CurrencyRON(v) + " " + suffix
}
