package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine is one distinct product in the shopping bag.
// Price is in the canonical unit; Quantity is always >= 1.
type CartLine struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartProduct is the subset of a product the bag needs to create a line.
type CartProduct struct {
	ID     string
	Title  string
	Price  decimal.Decimal
	Images []string
}

// CartSnapshot is a point-in-time copy of the bag used by checkout.
type CartSnapshot struct {
	Lines      []CartLine
	Subtotal   decimal.Decimal
	TotalItems int
	Open       bool
}
