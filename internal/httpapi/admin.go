package httpapi

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const adminRole = "admin"

type statsResponse struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalMessages int64 `json:"totalMessages"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
	TotalOrders   int64 `json:"totalOrders"`
}

func (h *handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to fetch stats")
		return
	}

	h.writeJSON(w, r, http.StatusOK, statsResponse{
		TotalProducts: stats.TotalProducts,
		TotalMessages: stats.TotalMessages,
		TotalLikes:    stats.TotalLikes,
		TotalComments: stats.TotalComments,
		TotalOrders:   stats.TotalOrders,
	})
}

// adminOnly accepts HS256 bearer tokens signed with secret and carrying
// role=admin. An empty secret locks the admin routes.
func adminOnly(secret []byte, logger *zap.Logger) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok || len(secret) == 0 {
				writeUnauthorized(w)
				return
			}

			claims := jwt.MapClaims{}
			_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil {
				logger.Debug("admin token rejected", zap.Error(err))
				writeUnauthorized(w)
				return
			}

			if role, _ := claims["role"].(string); role != adminRole {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
}
