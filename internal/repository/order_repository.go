package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// CreateOrder stores the order and its items atomically.
func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.ContactEmail == "" {
		return domain.Order{}, fmt.Errorf("contactEmail is empty")
	}
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order has no items")
	}
	if order.Total.Amount.IsNegative() {
		return domain.Order{}, fmt.Errorf("total is negative")
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if order.Total.Currency == (currency.Unit{}) {
		order.Total.Currency = domain.CanonicalCurrency
	}

	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		row, err := q.CreateOrder(ctx, db.CreateOrderParams{
			Status:          order.Status,
			Total:           order.Total.Amount,
			Currency:        order.Total.Currency.String(),
			ContactEmail:    order.ContactEmail,
			ShippingAddress: address,
			UserID:          pgtype.Text{String: order.UserID, Valid: order.UserID != ""},
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}

		for _, item := range order.Items {
			err := q.CreateOrderItem(ctx, db.CreateOrderItemParams{
				OrderID:         row.ID,
				ProductID:       item.ProductID,
				Quantity:        int32(item.Quantity),
				PriceAtPurchase: item.PriceAtPurchase,
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.CreateOrderItem: %w", err)
			}
		}

		order.ID = row.ID
		order.CreatedAt = row.CreatedAt

		return order, nil
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		row, err := q.GetOrder(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
		}

		itemRows, err := q.GetOrderItems(ctx, id)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		order, err := mapOrderToDomain(row, itemRows)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
		}

		return order, nil
	})
}

func mapOrderToDomain(row db.Order, itemRows []db.GetOrderItemsRow) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	var address domain.ShippingAddress
	if err := json.Unmarshal(row.ShippingAddress, &address); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, domain.OrderItem{
			ProductID:       item.ProductID,
			Quantity:        int(item.Quantity),
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return domain.Order{
		ID:              row.ID,
		Status:          row.Status,
		Total:           domain.Money{Amount: row.Total, Currency: parsedCurrency},
		ContactEmail:    row.ContactEmail,
		ShippingAddress: address,
		UserID:          row.UserID.String,
		Items:           items,
		CreatedAt:       row.CreatedAt,
	}, nil
}
