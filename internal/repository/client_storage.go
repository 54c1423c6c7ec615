package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/port"
)

type clientStorageFactory struct {
	q *db.Queries
}

func NewClientStorage(pool *pgxpool.Pool) port.ClientStorageFactory {
	return &clientStorageFactory{
		q: db.New(pool),
	}
}

func (f *clientStorageFactory) ForOwner(ownerID string) (port.ClientStorage, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &clientStorage{q: f.q, ownerID: ownerID}, nil
}

type clientStorage struct {
	q       *db.Queries
	ownerID string
}

func (s *clientStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	value, err := s.q.GetClientItem(ctx, db.GetClientItemParams{
		OwnerID: s.ownerID,
		Key:     key,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("q.GetClientItem: %w", err)
	}

	return value, true, nil
}

func (s *clientStorage) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := s.q.SetClientItem(ctx, db.SetClientItemParams{
		OwnerID: s.ownerID,
		Key:     key,
		Value:   value,
	})
	if err != nil {
		return fmt.Errorf("q.SetClientItem: %w", err)
	}

	return nil
}
