package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CanonicalCurrency is the unit every stored price is expressed in.
var CanonicalCurrency = currency.USD

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func USD(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: CanonicalCurrency}
}
