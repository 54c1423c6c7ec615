package currency

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// StorageKey is the client-storage key of the preferred country.
	StorageKey = "preferredCountry"

	DefaultDetectTimeout = 8 * time.Second
)

// Selection is the active country and its currency.
type Selection struct {
	CountryCode string
	Currency    Info
	Loading     bool
}

type Option func(*Store)

func WithDetectTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Store holds the display currency of one client.
//
// Detection runs at most once. A SetCountryCode call made before detection
// resolves wins: the detected country is discarded.
type Store struct {
	storage port.ClientStorage
	locator port.CountryLocator
	logger  *zap.Logger
	timeout time.Duration

	mu          sync.Mutex
	countryCode string
	info        Info
	loading     bool
	overridden  bool

	once sync.Once
	done chan struct{}
}

// New returns a store on DefaultCountry. locator may be nil, in which case
// detection only consults the stored preference.
func New(storage port.ClientStorage, locator port.CountryLocator, logger *zap.Logger, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		storage:     storage,
		locator:     locator,
		logger:      logger,
		timeout:     DefaultDetectTimeout,
		countryCode: DefaultCountry,
		info:        Lookup(DefaultCountry),
		loading:     true,
		done:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Detect resolves the country once and blocks until it is resolved.
// Later calls wait for the first one and do nothing else.
func (s *Store) Detect(ctx context.Context) {
	s.once.Do(func() {
		defer close(s.done)
		s.detect(ctx)
	})
	<-s.done
}

// Done is closed once detection resolves.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

func (s *Store) detect(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	code, err := s.locate(ctx)
	if err == nil && !IsKnownCountry(code) {
		err = fmt.Errorf("country[%s] is not supported", code)
	}

	if err == nil {
		s.adopt(ctx, normalize(code), true)
		return
	}

	s.logger.Info("location detection failed", zap.Error(err))

	stored, ok, err := s.storage.GetItem(ctx, StorageKey)
	if err != nil {
		s.logger.Error("failed to read preferred country", zap.Error(err))
		return
	}
	stored = normalize(stored)
	if !ok || stored == "" {
		return
	}

	s.adopt(ctx, stored, false)
}

func (s *Store) locate(ctx context.Context) (string, error) {
	if s.locator == nil {
		return "", fmt.Errorf("no locator configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		code string
		err  error
	}

	// buffered so a locator ignoring ctx does not block forever
	ch := make(chan result, 1)
	go func() {
		code, err := s.locator.LocateCountry(ctx)
		ch <- result{code: code, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("locator.LocateCountry: %w", r.err)
		}
		return r.code, nil
	case <-ctx.Done():
		return "", fmt.Errorf("locate country: %w", ctx.Err())
	}
}

// adopt applies a detected or stored country unless the user already chose one.
func (s *Store) adopt(ctx context.Context, code string, persist bool) {
	s.mu.Lock()
	if s.overridden {
		s.mu.Unlock()
		s.logger.Debug("discarding detected country after override", zap.String("country", code))
		return
	}
	s.countryCode = code
	s.info = Lookup(code)
	s.mu.Unlock()

	if persist {
		s.save(ctx, code)
	}
}

// SetCountryCode applies a user choice and persists it.
func (s *Store) SetCountryCode(ctx context.Context, code string) {
	code = normalize(code)

	s.mu.Lock()
	s.overridden = true
	s.countryCode = code
	s.info = Lookup(code)
	s.mu.Unlock()

	s.save(ctx, code)
}

func (s *Store) save(ctx context.Context, code string) {
	if err := s.storage.SetItem(ctx, StorageKey, code); err != nil {
		s.logger.Error("failed to save preferred country", zap.String("country", code), zap.Error(err))
	}
}

func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Selection{
		CountryCode: s.countryCode,
		Currency:    s.info,
		Loading:     s.loading,
	}
}

func (s *Store) ConvertPrice(priceInUSD decimal.Decimal) decimal.Decimal {
	return Convert(priceInUSD, s.Selection().Currency.Code())
}

func (s *Store) FormatPrice(price decimal.Decimal) string {
	return Format(price, s.Selection().Currency)
}

// DisplayPrice converts a canonical price and formats it in one step, using a
// single selection for both.
func (s *Store) DisplayPrice(priceInUSD decimal.Decimal) string {
	info := s.Selection().Currency
	return Format(Convert(priceInUSD, info.Code()), info)
}
