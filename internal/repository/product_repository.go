package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductToDomain(db.GetProductRow(row)))
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row), nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	product, err := normalizeProduct(product)
	if err != nil {
		return domain.Product{}, err
	}

	row, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		Title:           product.Title,
		Description:     product.Description,
		LongDescription: product.LongDescription,
		Price:           product.Price,
		Category:        product.Category,
		Images:          product.Images,
		InStock:         product.InStock,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.CreateProduct: %w", err)
	}

	product.ID = row.ID
	product.CreatedAt = row.CreatedAt
	product.LikesCount = 0
	product.CommentsCount = 0

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	product, err := normalizeProduct(product)
	if err != nil {
		return domain.Product{}, err
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Product, error) {
		rowsAffected, err := q.UpdateProduct(ctx, db.UpdateProductParams{
			ID:              product.ID,
			Title:           product.Title,
			Description:     product.Description,
			LongDescription: product.LongDescription,
			Price:           product.Price,
			Category:        product.Category,
			Images:          product.Images,
			InStock:         product.InStock,
		})
		if err != nil {
			return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", err)
		}
		if rowsAffected == 0 {
			return domain.Product{}, fmt.Errorf("product[%s]: %w", product.ID, domain.ErrNotFound)
		}

		row, err := q.GetProduct(ctx, product.ID)
		if err != nil {
			return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
		}

		return mapProductToDomain(row), nil
	})
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteProduct(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

// ToggleLike likes the product for the user, or removes an existing like.
// It reports whether the product is liked afterwards.
func (r *productRepository) ToggleLike(ctx context.Context, productID uuid.UUID, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("userID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (bool, error) {
		rowsAffected, err := q.DeleteLike(ctx, db.DeleteLikeParams{
			ProductID: productID,
			UserID:    userID,
		})
		if err != nil {
			return false, fmt.Errorf("q.DeleteLike: %w", err)
		}
		if rowsAffected > 0 {
			return false, nil
		}

		err = q.AddLike(ctx, db.AddLikeParams{
			ProductID: productID,
			UserID:    userID,
		})
		if missingParent(err) {
			return false, fmt.Errorf("product[%s]: %w", productID, domain.ErrNotFound)
		}
		if err != nil {
			return false, fmt.Errorf("q.AddLike: %w", err)
		}

		return true, nil
	})
}

func (r *productRepository) ListComments(ctx context.Context, productID uuid.UUID) ([]domain.Comment, error) {
	rows, err := r.q.ListComments(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("q.ListComments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentToDomain(row))
	}

	return comments, nil
}

func (r *productRepository) AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	if comment.UserID == "" {
		return domain.Comment{}, fmt.Errorf("userID is empty")
	}
	if comment.Content == "" {
		return domain.Comment{}, fmt.Errorf("content is empty")
	}

	var rating pgtype.Int4
	if comment.Rating != nil {
		if *comment.Rating < domain.MinCommentRating || *comment.Rating > domain.MaxCommentRating {
			return domain.Comment{}, fmt.Errorf("rating must be between %d and %d", domain.MinCommentRating, domain.MaxCommentRating)
		}
		rating = pgtype.Int4{Int32: *comment.Rating, Valid: true}
	}

	row, err := r.q.AddComment(ctx, db.AddCommentParams{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		UserName:  comment.UserName,
		UserEmail: comment.UserEmail,
		Content:   comment.Content,
		Rating:    rating,
	})
	if missingParent(err) {
		return domain.Comment{}, fmt.Errorf("product[%s]: %w", comment.ProductID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("q.AddComment: %w", err)
	}

	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt

	return comment, nil
}

func normalizeProduct(p domain.Product) (domain.Product, error) {
	if p.Price.IsNegative() {
		return domain.Product{}, fmt.Errorf("price is negative")
	}
	if len(p.Images) > domain.MaxProductImages {
		return domain.Product{}, fmt.Errorf("too many images: %d > %d", len(p.Images), domain.MaxProductImages)
	}

	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Category == "" {
		p.Category = domain.DefaultCategory
	}

	return p, nil
}

func mapProductToDomain(row db.GetProductRow) domain.Product {
	title := row.Title
	if title == "" {
		title = domain.UntitledProduct
	}

	images := row.Images
	if images == nil {
		images = []string{}
	}

	return domain.Product{
		ID:              row.ID,
		Title:           title,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		Price:           row.Price,
		Category:        row.Category,
		Images:          images,
		InStock:         row.InStock,
		LikesCount:      row.LikesCount,
		CommentsCount:   row.CommentsCount,
		CreatedAt:       row.CreatedAt,
	}
}

func mapCommentToDomain(row db.ProductComment) domain.Comment {
	var rating *int32
	if row.Rating.Valid {
		rating = &row.Rating.Int32
	}

	return domain.Comment{
		ID:        row.ID,
		ProductID: row.ProductID,
		UserID:    row.UserID,
		UserName:  row.UserName,
		UserEmail: row.UserEmail,
		Content:   row.Content,
		Rating:    rating,
		CreatedAt: row.CreatedAt,
	}
}
