// Package session keeps the cart and currency stores of active clients.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/currency"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultMaxSessions = 10_000

// Session is the client-side state of one visitor.
type Session struct {
	ClientID string
	Cart     *cart.Store
	Currency *currency.Store
}

type Option func(*Registry)

func WithMaxSessions(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxSessions = n
		}
	}
}

func WithDetectTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.detectTimeout = d
	}
}

// Registry creates sessions on first use and keeps the most recently used
// ones in memory. Evicted sessions are rebuilt from client storage.
type Registry struct {
	storages      port.ClientStorageFactory
	locators      port.CountryLocatorFactory
	logger        *zap.Logger
	maxSessions   int
	detectTimeout time.Duration

	sessions *lru.Cache[string, *Session]
	creating singleflight.Group
	pending  sync.WaitGroup
}

// NewRegistry builds a registry. locators may be nil to disable geolocation.
func NewRegistry(storages port.ClientStorageFactory, locators port.CountryLocatorFactory, logger *zap.Logger, opts ...Option) (*Registry, error) {
	if storages == nil {
		return nil, fmt.Errorf("storages is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{
		storages:      storages,
		locators:      locators,
		logger:        logger,
		maxSessions:   DefaultMaxSessions,
		detectTimeout: currency.DefaultDetectTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	sessions, err := lru.New[string, *Session](r.maxSessions)
	if err != nil {
		return nil, fmt.Errorf("lru.New: %w", err)
	}
	r.sessions = sessions

	return r, nil
}

// Get returns the session of clientID, creating it when needed. A new
// session hydrates its cart and starts currency detection for ip. Concurrent
// calls for the same client share one creation; a session whose cart could
// not be read is not kept, so the next call tries again.
func (r *Registry) Get(ctx context.Context, clientID, ip string) (*Session, error) {
	if clientID == "" {
		return nil, fmt.Errorf("clientID is empty")
	}

	if s, ok := r.sessions.Get(clientID); ok {
		return s, nil
	}

	created := r.creating.DoChan(clientID, func() (any, error) {
		if s, ok := r.sessions.Get(clientID); ok {
			return s, nil
		}

		s, err := r.newSession(context.WithoutCancel(ctx), clientID, ip)
		if err != nil {
			return nil, err
		}

		r.sessions.Add(clientID, s)
		return s, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-created:
		if res.Err != nil {
			return nil, fmt.Errorf("newSession: %w", res.Err)
		}
		return res.Val.(*Session), nil
	}
}

// Len reports the number of sessions held in memory.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// Wait blocks until every started currency detection has resolved.
func (r *Registry) Wait() {
	r.pending.Wait()
}

func (r *Registry) newSession(ctx context.Context, clientID, ip string) (*Session, error) {
	storage, err := r.storages.ForOwner(clientID)
	if err != nil {
		return nil, fmt.Errorf("storages.ForOwner: %w", err)
	}

	logger := r.logger.With(zap.String("client_id", clientID))

	bag, err := cart.New(storage, logger)
	if err != nil {
		return nil, fmt.Errorf("cart.New: %w", err)
	}
	if err := bag.Hydrate(ctx); err != nil {
		return nil, fmt.Errorf("cart.Hydrate: %w", err)
	}

	var locator port.CountryLocator
	if r.locators != nil {
		locator = r.locators.Locator(ip)
	}

	cur, err := currency.New(storage, locator, logger, currency.WithDetectTimeout(r.detectTimeout))
	if err != nil {
		return nil, fmt.Errorf("currency.New: %w", err)
	}

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		cur.Detect(ctx)
	}()

	return &Session{
		ClientID: clientID,
		Cart:     bag,
		Currency: cur,
	}, nil
}
