// Package region maps a visitor's country to display currency and language,
// and converts USD base prices into localized display strings.
package region

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is an ISO 4217 code supported by the pricing tables.
type Currency string

const (
	USD Currency = "USD"
	INR Currency = "INR"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	RUB Currency = "RUB"
	CNY Currency = "CNY"
)

// Region is the visitor's resolved country, currency and language.
// It is a deterministic function of the country code; unrecognized codes
// fall back to {US-default currency, English}.
type Region struct {
	CountryCode string   `json:"countryCode"`
	Currency    Currency `json:"currency"`
	Language    string   `json:"language"`
}

var eurozone = map[string]bool{
	"DE": true, "FR": true, "IT": true, "ES": true, "NL": true, "BE": true,
	"AT": true, "PT": true, "FI": true, "GR": true, "IE": true,
}

var latinAmerica = map[string]bool{
	"MX": true, "AR": true, "CO": true, "PE": true, "CL": true,
}

// RegionFor maps a country code to its Region. First match wins; the
// precedence order is part of the pricing contract. Never errors.
func RegionFor(countryCode string) Region {
	code := strings.ToUpper(strings.TrimSpace(countryCode))

	switch {
	case code == "IN":
		return Region{code, INR, "en"}
	case eurozone[code]:
		lang := "en"
		switch code {
		case "DE", "AT":
			lang = "de"
		case "ES":
			lang = "es"
		case "FR":
			lang = "fr"
		}
		return Region{code, EUR, lang}
	case code == "GB" || code == "UK":
		return Region{code, GBP, "en"}
	case code == "CA":
		return Region{code, CAD, "en"}
	case code == "AU":
		return Region{code, AUD, "en"}
	case code == "RU":
		return Region{code, RUB, "ru"}
	case code == "CN":
		return Region{code, CNY, "zh"}
	case latinAmerica[code]:
		return Region{code, USD, "es"}
	default:
		return Region{code, USD, "en"}
	}
}

// rates are static USD exchange rates baked into the pricing contract.
var rates = map[Currency]float64{
	USD: 1, INR: 84.50, EUR: 0.92, GBP: 0.78,
	CAD: 1.35, AUD: 1.52, RUB: 92.50, CNY: 7.23,
}

var symbols = map[Currency]string{
	USD: "$", INR: "₹", EUR: "€", GBP: "£",
	CAD: "C$", AUD: "A$", RUB: "₽", CNY: "¥",
}

// roundToTens marks the currencies whose converted amounts are additionally
// snapped to the nearest multiple of 10.
var roundToTens = map[Currency]bool{INR: true, RUB: true, CNY: true}

// en grouping (comma separators) is used for every currency; the formatted
// outputs are a compatibility contract.
var printer = message.NewPrinter(language.English)

// Symbol returns the display prefix for the region's currency.
func (r Region) Symbol() string {
	return symbols[r.Currency]
}

// Convert turns a USD base amount into a display string in the region's
// currency: multiply by the static rate, round to the nearest integer, and
// for INR/RUB/CNY round the result again to the nearest multiple of 10.
// The double rounding is intentional and pinned by tests; collapsing it
// into a single round-to-10 would shift values near midpoints.
func (r Region) Convert(amountUSD float64) string {
	rate, ok := rates[r.Currency]
	if !ok {
		rate = 1
	}
	v := math.Round(amountUSD * rate)
	if roundToTens[r.Currency] {
		v = math.Round(v/10) * 10
	}
	return symbols[r.Currency] + printer.Sprintf("%d", int64(v))
}
