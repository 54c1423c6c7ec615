package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *handler) createMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	msg := domain.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Body:    strings.TrimSpace(req.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Body == "" {
		h.writeError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	created, err := h.messages.CreateMessage(r.Context(), msg)
	if err != nil {
		h.fail(w, r, err, "Failed to send message")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, toMessageResponse(created))
}

func (h *handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.ListMessages(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to fetch messages")
		return
	}

	resp := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, toMessageResponse(m))
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *handler) markMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.messages.MarkRead(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to update message")
		return
	}
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "Not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.messages.DeleteMessage(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to delete message")
		return
	}
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "Not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
