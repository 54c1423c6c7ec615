package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

type Order struct {
	ID              uuid.UUID
	Status          string
	Total           Money
	ContactEmail    string
	ShippingAddress ShippingAddress
	UserID          string
	Items           []OrderItem

	CreatedAt time.Time
}

type OrderItem struct {
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase decimal.Decimal
}
