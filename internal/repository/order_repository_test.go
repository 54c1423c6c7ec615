package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	pgSuite

	repo port.OrderRepository
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(orderRepositorySuite))
}

func (suite *orderRepositorySuite) SetupSuite() {
	suite.pgSuite.SetupSuite()
	suite.repo = repository.NewOrder(suite.pool)
}

func (suite *orderRepositorySuite) TestCreateOrder() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		order     domain.Order
		wantError string
	}{
		{
			name:  "create order: ok",
			order: randomOrder(),
		},
		{
			name: "guest order without user: ok",
			order: func() domain.Order {
				o := randomOrder()
				o.UserID = ""
				return o
			}(),
		},
		{
			name: "empty email: error",
			order: func() domain.Order {
				o := randomOrder()
				o.ContactEmail = ""
				return o
			}(),
			wantError: "contactEmail is empty",
		},
		{
			name: "no items: error",
			order: func() domain.Order {
				o := randomOrder()
				o.Items = nil
				return o
			}(),
			wantError: "order has no items",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			created, err := suite.repo.CreateOrder(ctx, tt.order)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, domain.OrderStatusPending, created.Status)

			actual, err := suite.repo.GetOrder(ctx, created.ID)
			require.NoError(t, err)
			assertOrder(t, created, actual)
		})
	}
}

func (suite *orderRepositorySuite) TestCreateOrder_ItemFailureRollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	order := randomOrder()
	order.Items = append(order.Items, domain.OrderItem{
		ProductID:       uuid.New(),
		Quantity:        0, // violates CHECK (quantity > 0)
		PriceAtPurchase: decimal.NewFromInt(1),
	})

	_, err := suite.repo.CreateOrder(ctx, order)
	require.Error(t, err)
	assert.ErrorContains(t, err, "q.CreateOrderItem")

	var count int
	err = suite.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func (suite *orderRepositorySuite) TestCreateOrderWithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	created, err := repository.NewOrderWithTx(tx).CreateOrder(ctx, randomOrder())
	require.NoError(t, err)

	// not visible outside the transaction yet
	_, err = suite.repo.GetOrder(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, tx.Commit(ctx))

	_, err = suite.repo.GetOrder(ctx, created.ID)
	require.NoError(t, err)
}

func (suite *orderRepositorySuite) TestGetOrder_NotFound() {
	_, err := suite.repo.GetOrder(suite.T().Context(), uuid.New())
	suite.ErrorIs(err, domain.ErrNotFound)
}

func randomOrder() domain.Order {
	items := make([]domain.OrderItem, gofakeit.IntRange(1, 4))
	total := decimal.Zero
	for i := range items {
		items[i] = domain.OrderItem{
			ProductID:       uuid.New(),
			Quantity:        gofakeit.IntRange(1, 5),
			PriceAtPurchase: decimal.NewFromFloat(gofakeit.Price(1, 300)).Round(2),
		}
		total = total.Add(items[i].PriceAtPurchase.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
	}

	address := gofakeit.Address()

	return domain.Order{
		Total:        domain.USD(total),
		ContactEmail: gofakeit.Email(),
		ShippingAddress: domain.ShippingAddress{
			FullName:   gofakeit.Name(),
			Phone:      gofakeit.Phone(),
			Line1:      address.Street,
			City:       address.City,
			State:      address.State,
			PostalCode: address.Zip,
			Country:    address.Country,
		},
		UserID: gofakeit.UUID(),
		Items:  items,
	}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Order{}, "CreatedAt"),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
