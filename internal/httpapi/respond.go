package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

var errEmptyBody = errors.New("request body is empty")

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

// fail maps err to a response. Unknown errors are logged and hidden.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, domain.ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, "Not found")
		return
	}

	h.logger.Error(msg,
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.writeError(w, r, http.StatusInternalServerError, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
