package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (bool, error)
}

type StatsRepository interface {
	GetStats(ctx context.Context) (domain.Stats, error)
}
