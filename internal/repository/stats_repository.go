package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type statsRepository struct {
	q *db.Queries
}

func NewStats(pool *pgxpool.Pool) port.StatsRepository {
	return &statsRepository{
		q: db.New(pool),
	}
}

func (r *statsRepository) GetStats(ctx context.Context) (domain.Stats, error) {
	row, err := r.q.GetStats(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("q.GetStats: %w", err)
	}

	return domain.Stats{
		TotalProducts: row.TotalProducts,
		TotalMessages: row.TotalMessages,
		TotalLikes:    row.TotalLikes,
		TotalComments: row.TotalComments,
		TotalOrders:   row.TotalOrders,
	}, nil
}
