// Package httpapi exposes the storefront over HTTP.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/session"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

type Sessions interface {
	Get(ctx context.Context, clientID, ip string) (*session.Session, error)
}

type CountryLookup interface {
	LookupCountry(ctx context.Context, ip string) (string, error)
}

type Deps struct {
	Logger   *zap.Logger
	Sessions Sessions
	Products port.ProductRepository
	Messages port.MessageRepository
	Stats    port.StatsRepository
	Orders   port.OrderRepository
	Checkout *checkout.Service
	Geo      CountryLookup

	AdminSecret    string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type handler struct {
	logger   *zap.Logger
	sessions Sessions
	products port.ProductRepository
	messages port.MessageRepository
	stats    port.StatsRepository
	orders   port.OrderRepository
	checkout *checkout.Service
	geo      CountryLookup
}

func NewRouter(d Deps) (http.Handler, error) {
	switch {
	case d.Sessions == nil:
		return nil, fmt.Errorf("sessions is nil")
	case d.Products == nil:
		return nil, fmt.Errorf("products is nil")
	case d.Messages == nil:
		return nil, fmt.Errorf("messages is nil")
	case d.Stats == nil:
		return nil, fmt.Errorf("stats is nil")
	case d.Orders == nil:
		return nil, fmt.Errorf("orders is nil")
	case d.Checkout == nil:
		return nil, fmt.Errorf("checkout is nil")
	case d.Geo == nil:
		return nil, fmt.Errorf("geo is nil")
	}

	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	h := &handler{
		logger:   logger,
		sessions: d.Sessions,
		products: d.Products,
		messages: d.Messages,
		stats:    d.Stats,
		orders:   d.Orders,
		checkout: d.Checkout,
		geo:      d.Geo,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", clientIDHeader},
		ExposedHeaders:   []string{clientIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/currency/countries", h.listCountries)
		r.Get("/currency/location", h.locate)
		r.Post("/messages", h.createMessage)

		r.Group(func(r chi.Router) {
			r.Use(h.withSession)

			r.Get("/products", h.listProducts)
			r.Get("/products/{id}", h.getProduct)
			r.Post("/products/{id}/like", h.toggleLike)
			r.Get("/products/{id}/comments", h.listComments)
			r.Post("/products/{id}/comments", h.addComment)

			r.Get("/cart", h.getCart)
			r.Delete("/cart", h.clearCart)
			r.Put("/cart/open", h.setCartOpen)
			r.Post("/cart/items", h.addCartItem)
			r.Patch("/cart/items/{id}", h.updateCartItem)
			r.Delete("/cart/items/{id}", h.removeCartItem)

			r.Get("/currency", h.getCurrency)
			r.Put("/currency", h.setCurrency)

			r.Post("/checkout", h.placeOrder)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly([]byte(d.AdminSecret), logger))

			r.Get("/stats", h.getStats)

			r.Post("/products", h.createProduct)
			r.Put("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.deleteProduct)

			r.Get("/orders/{id}", h.getOrder)

			r.Get("/messages", h.listMessages)
			r.Patch("/messages/{id}/read", h.markMessageRead)
			r.Delete("/messages/{id}", h.deleteMessage)
		})
	})

	return r, nil
}
