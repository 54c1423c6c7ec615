package currency_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		country    string
		wantCode   string
		wantSymbol string
	}{
		{name: "nigeria", country: "NG", wantCode: "NGN", wantSymbol: "₦"},
		{name: "japan", country: "JP", wantCode: "JPY", wantSymbol: "¥"},
		{name: "euro pseudo-country", country: "EU", wantCode: "EUR", wantSymbol: "€"},
		{name: "lower case", country: "gb", wantCode: "GBP", wantSymbol: "£"},
		{name: "mexico shares the dollar sign", country: "MX", wantCode: "MXN", wantSymbol: "$"},
		{name: "unknown falls back to naira", country: "FR", wantCode: "NGN", wantSymbol: "₦"},
		{name: "empty falls back to naira", country: "", wantCode: "NGN", wantSymbol: "₦"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := currency.Lookup(tt.country)
			assert.Equal(t, tt.wantCode, info.Code())
			assert.Equal(t, tt.wantSymbol, info.Symbol)
		})
	}
}

func TestCountries(t *testing.T) {
	countries := currency.Countries()
	require.Len(t, countries, 21)

	for i := 1; i < len(countries); i++ {
		assert.Less(t, countries[i-1].Code, countries[i].Code)
	}

	for _, c := range countries {
		assert.True(t, currency.IsKnownCountry(c.Code))
		// every listed currency has a rate
		assert.False(t, currency.Rate(c.Currency.Code()).Equal(decimal.NewFromInt(1)) && c.Currency.Code() != "USD",
			"missing rate for %s", c.Currency.Code())
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "NGN", want: "1550"},
		{code: "USD", want: "1"},
		{code: "JPY", want: "149.5"},
		{code: "KRW", want: "1319.5"},
		{code: "TRY", want: "33.25"},
		{code: "XYZ", want: "1"},
		{code: "", want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(currency.Rate(tt.code)))
		})
	}
}

func TestConvert_Linear(t *testing.T) {
	for _, c := range currency.Countries() {
		code := c.Currency.Code()

		x := decimal.NewFromFloat(gofakeit.Price(0, 1000)).Round(2)
		two := decimal.NewFromInt(2)

		got := currency.Convert(x.Mul(two), code)
		want := currency.Convert(x, code).Mul(two)
		assert.True(t, want.Equal(got), "%s: %s != %s", code, got, want)
	}
}

func TestFormat(t *testing.T) {
	price := decimal.RequireFromString("1495.456")

	for _, c := range currency.Countries() {
		got := currency.Format(price, c.Currency)

		switch c.Currency.Code() {
		case "JPY", "KRW":
			assert.Equal(t, c.Currency.Symbol+"1495", got)
		default:
			assert.Equal(t, c.Currency.Symbol+"1495.46", got)
		}
	}
}

func TestFormat_NoGrouping(t *testing.T) {
	got := currency.Format(decimal.NewFromInt(1234567), currency.Lookup("US"))
	assert.Equal(t, "$1234567.00", got)
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "₦15500.00", currency.Display(decimal.NewFromInt(10), "NG"))
	assert.Equal(t, "¥1495", currency.Display(decimal.NewFromInt(10), "JP"))
	assert.Equal(t, "£7.90", currency.Display(decimal.NewFromInt(10), "GB"))
}
