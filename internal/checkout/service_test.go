package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const publicKey = "pk_test_storefront"

func TestCheckout(t *testing.T) {
	ctx := t.Context()
	orders := &fakeOrders{}
	svc := newService(t, orders)
	bag := newBag(t)

	speaker := uuid.NewString()
	cable := uuid.NewString()
	bag.AddItem(ctx, domain.CartProduct{ID: speaker, Title: "Speaker", Price: decimal.RequireFromString("49.99")})
	bag.AddItem(ctx, domain.CartProduct{ID: speaker, Title: "Speaker", Price: decimal.RequireFromString("49.99")})
	bag.AddItem(ctx, domain.CartProduct{ID: cable, Title: "Cable", Price: decimal.RequireFromString("5.50")})

	email := gofakeit.Email()
	res, err := svc.Checkout(ctx, bag, checkout.Request{
		Email:           email,
		ShippingAddress: domain.ShippingAddress{FullName: "Ada Obi", Line1: "1 Marina", City: "Lagos", Country: "NG"},
	})
	require.NoError(t, err)

	assert.Equal(t, publicKey, res.PublicKey)
	assert.True(t, decimal.RequireFromString("105.48").Equal(res.Total))
	assert.Empty(t, bag.Lines())

	require.Len(t, orders.created, 1)
	order := orders.created[0]
	assert.Equal(t, res.OrderID, order.ID)
	assert.Equal(t, email, order.ContactEmail)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.CanonicalCurrency, order.Total.Currency)

	wantItems := []domain.OrderItem{
		{ProductID: uuid.MustParse(speaker), Quantity: 2, PriceAtPurchase: decimal.RequireFromString("49.99")},
		{ProductID: uuid.MustParse(cable), Quantity: 1, PriceAtPurchase: decimal.RequireFromString("5.50")},
	}
	if diff := cmp.Diff(wantItems, order.Items, cmp.Comparer(decimal.Decimal.Equal)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckout_Errors(t *testing.T) {
	validID := uuid.NewString()

	tests := []struct {
		name    string
		lines   []domain.CartProduct
		email   string
		total   *decimal.Decimal
		wantErr error
	}{
		{
			name:    "empty cart",
			email:   gofakeit.Email(),
			wantErr: checkout.ErrEmptyCart,
		},
		{
			name:    "missing email",
			lines:   []domain.CartProduct{{ID: validID, Price: decimal.NewFromInt(1)}},
			wantErr: checkout.ErrInvalidEmail,
		},
		{
			name:    "malformed email",
			lines:   []domain.CartProduct{{ID: validID, Price: decimal.NewFromInt(1)}},
			email:   "not-an-email",
			wantErr: checkout.ErrInvalidEmail,
		},
		{
			name:    "non uuid product",
			lines:   []domain.CartProduct{{ID: "p1", Price: decimal.NewFromInt(1)}},
			email:   gofakeit.Email(),
			wantErr: checkout.ErrInvalidItem,
		},
		{
			name:    "total mismatch",
			lines:   []domain.CartProduct{{ID: validID, Price: decimal.NewFromInt(10)}},
			email:   gofakeit.Email(),
			total:   decimalPtr("9.99"),
			wantErr: checkout.ErrTotalMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			orders := &fakeOrders{}
			svc := newService(t, orders)
			bag := newBag(t)

			for _, p := range tt.lines {
				bag.AddItem(ctx, p)
			}
			before := bag.Lines()

			_, err := svc.Checkout(ctx, bag, checkout.Request{Email: tt.email, Total: tt.total})
			require.ErrorIs(t, err, tt.wantErr)

			assert.Empty(t, orders.created)
			assert.Equal(t, before, bag.Lines())
		})
	}
}

func TestCheckout_RepositoryFailureKeepsCart(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, &fakeOrders{err: errors.New("connection refused")})
	bag := newBag(t)

	bag.AddItem(ctx, domain.CartProduct{ID: uuid.NewString(), Title: "Speaker", Price: decimal.RequireFromString("49.99")})

	_, err := svc.Checkout(ctx, bag, checkout.Request{Email: gofakeit.Email()})
	require.ErrorContains(t, err, "connection refused")

	assert.Len(t, bag.Lines(), 1)
}

func TestCheckout_KeepsLinesAddedDuringOrder(t *testing.T) {
	ctx := t.Context()
	bag := newBag(t)

	speaker := domain.CartProduct{ID: uuid.NewString(), Title: "Speaker", Price: decimal.RequireFromString("49.99")}
	cable := domain.CartProduct{ID: uuid.NewString(), Title: "Cable", Price: decimal.RequireFromString("5.50")}
	bag.AddItem(ctx, speaker)

	orders := &fakeOrders{
		onCreate: func() {
			bag.AddItem(ctx, cable)
			bag.AddItem(ctx, speaker)
		},
	}
	svc := newService(t, orders)

	_, err := svc.Checkout(ctx, bag, checkout.Request{Email: gofakeit.Email()})
	require.NoError(t, err)

	require.Len(t, orders.created, 1)
	require.Len(t, orders.created[0].Items, 1)
	assert.Equal(t, 1, orders.created[0].Items[0].Quantity)

	lines := bag.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, speaker.ID, lines[0].ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, cable.ID, lines[1].ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestPlaceOrder_MatchingTotal(t *testing.T) {
	orders := &fakeOrders{}
	svc := newService(t, orders)

	snapshot := domain.CartSnapshot{
		Lines: []domain.CartLine{
			{ID: uuid.NewString(), Title: "Phone", Price: decimal.RequireFromString("199.00"), Quantity: 2},
		},
	}

	res, err := svc.PlaceOrder(t.Context(), snapshot, checkout.Request{
		Email: gofakeit.Email(),
		Total: decimalPtr("398"),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(398).Equal(res.Total))
	assert.Len(t, orders.created, 1)
}

func TestNewService_NilOrders(t *testing.T) {
	_, err := checkout.NewService(nil, publicKey, nil)
	require.EqualError(t, err, "orders is nil")
}

func newService(t *testing.T, orders *fakeOrders) *checkout.Service {
	t.Helper()

	svc, err := checkout.NewService(orders, publicKey, zaptest.NewLogger(t))
	require.NoError(t, err)

	return svc
}

func newBag(t *testing.T) *cart.Store {
	t.Helper()

	st, err := storage.NewMemory().ForOwner(gofakeit.UUID())
	require.NoError(t, err)

	bag, err := cart.New(st, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, bag.Hydrate(t.Context()))

	return bag
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fakeOrders struct {
	err      error
	onCreate func()

	mu      sync.Mutex
	created []domain.Order
}

func (f *fakeOrders) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.err != nil {
		return domain.Order{}, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	order.ID = uuid.New()
	f.created = append(f.created, order)

	return order, nil
}

func (f *fakeOrders) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range f.created {
		if o.ID == id {
			return o, nil
		}
	}

	return domain.Order{}, domain.ErrNotFound
}
