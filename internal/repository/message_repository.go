package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type messageRepository struct {
	q *db.Queries
}

func NewMessage(pool *pgxpool.Pool) port.MessageRepository {
	return &messageRepository{
		q: db.New(pool),
	}
}

func (r *messageRepository) CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	switch {
	case msg.Name == "":
		return domain.Message{}, fmt.Errorf("name is empty")
	case msg.Email == "":
		return domain.Message{}, fmt.Errorf("email is empty")
	case msg.Subject == "":
		return domain.Message{}, fmt.Errorf("subject is empty")
	case msg.Body == "":
		return domain.Message{}, fmt.Errorf("message is empty")
	}

	row, err := r.q.CreateMessage(ctx, db.CreateMessageParams{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Body,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("q.CreateMessage: %w", err)
	}

	msg.ID = row.ID
	msg.Read = row.Read
	msg.CreatedAt = row.CreatedAt

	return msg, nil
}

func (r *messageRepository) ListMessages(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.q.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListMessages: %w", err)
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, domain.Message{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Phone:     row.Phone,
			Subject:   row.Subject,
			Body:      row.Message,
			Read:      row.Read,
			CreatedAt: row.CreatedAt,
		})
	}

	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.MarkMessageRead(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.MarkMessageRead: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *messageRepository) DeleteMessage(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteMessage(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteMessage: %w", err)
	}

	return rowsAffected > 0, nil
}
