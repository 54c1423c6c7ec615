// Package checkout turns a cart snapshot into a pending order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidItem   = errors.New("invalid item")
	ErrTotalMismatch = errors.New("total does not match items")
)

type Request struct {
	Email           string
	ShippingAddress domain.ShippingAddress
	UserID          string

	// Total is optional. When set it must equal the sum of the lines.
	Total *decimal.Decimal
}

type Result struct {
	OrderID   uuid.UUID
	Total     decimal.Decimal
	PublicKey string
}

type Service struct {
	orders    port.OrderRepository
	publicKey string
	logger    *zap.Logger
}

func NewService(orders port.OrderRepository, publicKey string, logger *zap.Logger) (*Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		orders:    orders,
		publicKey: publicKey,
		logger:    logger,
	}, nil
}

// Checkout places an order for the bag contents and, once the order is
// stored, removes the ordered quantities from the bag. Lines added while the
// order was being placed stay in the bag. The bag is left untouched on any
// error.
func (s *Service) Checkout(ctx context.Context, bag *cart.Store, req Request) (Result, error) {
	if bag == nil {
		return Result{}, fmt.Errorf("bag is nil")
	}

	snapshot := bag.Snapshot()

	res, err := s.PlaceOrder(ctx, snapshot, req)
	if err != nil {
		return Result{}, err
	}

	bag.RemoveLines(ctx, snapshot.Lines)

	return res, nil
}

// PlaceOrder stores a pending order for the given snapshot.
func (s *Service) PlaceOrder(ctx context.Context, snapshot domain.CartSnapshot, req Request) (Result, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return Result{}, err
	}

	if len(snapshot.Lines) == 0 {
		return Result{}, ErrEmptyCart
	}

	items, total, err := orderItems(snapshot.Lines)
	if err != nil {
		return Result{}, err
	}

	if req.Total != nil && !req.Total.Equal(total) {
		return Result{}, fmt.Errorf("%w: got %s, want %s", ErrTotalMismatch, req.Total, total)
	}

	order, err := s.orders.CreateOrder(ctx, domain.Order{
		Status:          domain.OrderStatusPending,
		Total:           domain.USD(total),
		ContactEmail:    email,
		ShippingAddress: req.ShippingAddress,
		UserID:          req.UserID,
		Items:           items,
	})
	if err != nil {
		return Result{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	s.logger.Info("order placed",
		zap.Stringer("order_id", order.ID),
		zap.Stringer("total", total),
		zap.Int("items", len(items)))

	return Result{
		OrderID:   order.ID,
		Total:     total,
		PublicKey: s.publicKey,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is empty", ErrInvalidEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return email, nil
}

func orderItems(lines []domain.CartLine) ([]domain.OrderItem, decimal.Decimal, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		productID, err := uuid.Parse(line.ID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("%w: id %q", ErrInvalidItem, line.ID)
		}
		if line.Quantity < 1 {
			return nil, decimal.Zero, fmt.Errorf("%w: quantity %d", ErrInvalidItem, line.Quantity)
		}
		if line.Price.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: price %s", ErrInvalidItem, line.Price)
		}

		items = append(items, domain.OrderItem{
			ProductID:       productID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Price,
		})
		total = total.Add(line.Total())
	}

	return items, total, nil
}
