package repository_test

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_client_storage.up.sql",
			"../migrations/02_products.up.sql",
			"../migrations/03_orders.up.sql",
			"../migrations/04_contact_messages.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

// pgSuite owns one postgres container and pool per suite.
type pgSuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
}

func (suite *pgSuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)
}

func (suite *pgSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *pgSuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"TRUNCATE TABLE client_storage, product_likes, product_comments, products, order_items, orders, contact_messages CASCADE")
	suite.NoError(err)
}

func randomProduct() domain.Product {
	return domain.Product{
		Title:           gofakeit.ProductName(),
		Description:     gofakeit.ProductDescription(),
		LongDescription: gofakeit.ProductDescription() + " " + gofakeit.ProductDescription(),
		Price:           decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
		Category:        gofakeit.ProductCategory(),
		Images:          []string{gofakeit.URL(), gofakeit.URL()},
		InStock:         gofakeit.Bool(),
	}
}
