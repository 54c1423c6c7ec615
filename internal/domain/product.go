package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultCategory  = "Electronics"
	UntitledProduct  = "Untitled Product"
	MaxProductImages = 5
	MinCommentRating = 1
	MaxCommentRating = 5
)

type Product struct {
	ID              uuid.UUID
	Title           string
	Description     string
	LongDescription string
	Price           decimal.Decimal
	Category        string
	Images          []string
	InStock         bool
	LikesCount      int64
	CommentsCount   int64

	CreatedAt time.Time
}

func (p Product) CartProduct() CartProduct {
	return CartProduct{
		ID:     p.ID.String(),
		Title:  p.Title,
		Price:  p.Price,
		Images: p.Images,
	}
}

type Comment struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    string
	UserName  string
	UserEmail string
	Content   string
	Rating    *int32

	CreatedAt time.Time
}
