// Package currency converts canonical (USD) prices into a display currency
// chosen per client.
package currency

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Country pairs a country code with its display currency.
type Country struct {
	Code     string
	Currency Info
}

// Lookup returns the currency of a country. Unknown codes get the NGN record.
func Lookup(countryCode string) Info {
	info, ok := countries[normalize(countryCode)]
	if !ok {
		return defaultInfo
	}
	return info
}

func IsKnownCountry(countryCode string) bool {
	_, ok := countries[normalize(countryCode)]
	return ok
}

// Rate returns the exchange rate of a currency code against USD, 1 for
// unknown codes.
func Rate(currencyCode string) decimal.Decimal {
	rate, ok := rates[currencyCode]
	if !ok {
		return decimal.NewFromInt(1)
	}
	return rate
}

func Convert(priceInUSD decimal.Decimal, currencyCode string) decimal.Decimal {
	return priceInUSD.Mul(Rate(currencyCode))
}

// Format renders price with the currency symbol as prefix, no grouping.
func Format(price decimal.Decimal, info Info) string {
	return info.Symbol + price.StringFixed(places(info.Code()))
}

// Display converts a canonical price and formats it for a country.
func Display(priceInUSD decimal.Decimal, countryCode string) string {
	info := Lookup(countryCode)
	return Format(Convert(priceInUSD, info.Code()), info)
}

// Countries lists the supported countries ordered by code.
func Countries() []Country {
	result := make([]Country, 0, len(countries))
	for code, info := range countries {
		result = append(result, Country{Code: code, Currency: info})
	}

	slices.SortFunc(result, func(a, b Country) int {
		return cmp.Compare(a.Code, b.Code)
	})

	return result
}

func places(currencyCode string) int32 {
	if zeroDecimal[currencyCode] {
		return 0
	}
	return 2
}

func normalize(countryCode string) string {
	return strings.ToUpper(strings.TrimSpace(countryCode))
}
