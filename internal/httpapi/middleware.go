package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/session"
	"go.uber.org/zap"
)

const (
	clientIDHeader = "X-Client-ID"
	clientIDCookie = "sf_client_id"
	maxClientIDLen = 128
)

type ctxKey int

const sessionKey ctxKey = iota

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// withSession resolves the caller's session from the client id header or
// cookie. Callers without one get a fresh id echoed back in both.
func (h *handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := requestClientID(r)
		if clientID == "" {
			clientID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     clientIDCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(clientIDHeader, clientID)

		s, err := h.sessions.Get(r.Context(), clientID, clientIP(r))
		if err != nil {
			h.fail(w, r, err, "Failed to load session")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
	})
}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}

func requestClientID(r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(clientIDHeader))
	if id == "" {
		if c, err := r.Cookie(clientIDCookie); err == nil {
			id = strings.TrimSpace(c.Value)
		}
	}
	if len(id) > maxClientIDLen {
		return ""
	}
	return id
}

// clientIP returns the first X-Forwarded-For entry, then CF-Connecting-IP,
// then the connection address. Empty when none is usable.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if addr := net.ParseIP(host); addr == nil || addr.IsLoopback() || addr.IsPrivate() {
		return ""
	}

	return host
}
