package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission shown in the admin inbox.
type Message struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
	Read    bool

	CreatedAt time.Time
}

type Stats struct {
	TotalProducts int64
	TotalMessages int64
	TotalLikes    int64
	TotalComments int64
	TotalOrders   int64
}
