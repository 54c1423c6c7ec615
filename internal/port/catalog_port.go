package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)

	ToggleLike(ctx context.Context, productID uuid.UUID, userID string) (bool, error)
	ListComments(ctx context.Context, productID uuid.UUID) ([]domain.Comment, error)
	AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}
