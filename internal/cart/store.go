// Package cart holds the shopping-bag state of one client.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StorageKey is the client-storage key holding the serialized lines.
const StorageKey = "cart"

// Store owns the bag contents of a single client. Totals are derived from
// the lines on every read and never stored.
type Store struct {
	storage port.ClientStorage
	logger  *zap.Logger

	mu       sync.Mutex
	lines    []domain.CartLine
	open     bool
	hydrated bool
}

func New(storage port.ClientStorage, logger *zap.Logger) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		storage: storage,
		logger:  logger,
		lines:   []domain.CartLine{},
	}, nil
}

// Hydrate loads the persisted lines. Malformed data leaves the bag empty.
// A read error is returned and the store stays unhydrated, so later
// mutations do not overwrite the stored cart. Only the first successful
// call has an effect.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}

	raw, ok, err := s.storage.GetItem(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("storage.GetItem: %w", err)
	}
	s.hydrated = true

	if !ok || raw == "" {
		return nil
	}

	var stored []storedLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Error("failed to parse cart", zap.Error(err))
		return nil
	}

	lines := make([]domain.CartLine, 0, len(stored))
	for _, l := range stored {
		lines = append(lines, domain.CartLine{
			ID:       l.ID,
			Title:    l.Title,
			Price:    ParsePrice(l.Price),
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}

	s.lines = sanitize(lines)

	return nil
}

// storedLine is the persisted form of a line. Price is written as a JSON
// number and parsed leniently, older snapshots may hold it as a string.
type storedLine struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    json.RawMessage `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

func (s *Store) AddItem(ctx context.Context, product domain.CartProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, domain.CartLine{
			ID:       product.ID,
			Title:    product.Title,
			Price:    coercePrice(product.Price),
			Image:    firstImage(product.Images),
			Quantity: 1,
		})
	}
	s.open = true

	s.persist(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, id)
}

// UpdateQuantity sets the quantity of a line; anything below 1 removes it.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(ctx, id)
		return
	}

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.lines[i].Quantity = quantity

	s.persist(ctx)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []domain.CartLine{}
	s.persist(ctx)
}

// RemoveLines subtracts the quantities of lines, typically a checkout
// snapshot, from the bag. Lines added or increased since the snapshot keep
// the difference.
func (s *Store) RemoveLines(ctx context.Context, lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, l := range lines {
		i := s.indexOf(l.ID)
		if i < 0 {
			continue
		}

		changed = true
		if s.lines[i].Quantity <= l.Quantity {
			s.lines = slices.Delete(s.lines, i, i+1)
			continue
		}
		s.lines[i].Quantity -= l.Quantity
	}

	if changed {
		s.persist(ctx)
	}
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return totalItems(s.lines)
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return subtotal(s.lines)
}

func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.CartSnapshot{
		Lines:      slices.Clone(s.lines),
		Subtotal:   subtotal(s.lines),
		TotalItems: totalItems(s.lines),
		Open:       s.open,
	}
}

func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = open
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.open
}

func (s *Store) removeLocked(ctx context.Context, id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.lines = slices.Delete(s.lines, i, i+1)

	s.persist(ctx)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.ID == id
	})
}

// persist writes the full line collection. Writes before hydration are
// skipped so an empty in-memory bag never clobbers the stored one.
func (s *Store) persist(ctx context.Context) {
	if !s.hydrated {
		return
	}

	stored := make([]storedLine, 0, len(s.lines))
	for _, l := range s.lines {
		stored = append(stored, storedLine{
			ID:       l.ID,
			Title:    l.Title,
			Price:    json.RawMessage(l.Price.String()),
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		s.logger.Error("failed to serialize cart", zap.Error(err))
		return
	}

	if err := s.storage.SetItem(ctx, StorageKey, string(raw)); err != nil {
		s.logger.Error("failed to save cart", zap.Error(err))
	}
}

func totalItems(lines []domain.CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func subtotal(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func coercePrice(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

// sanitize drops lines that break the bag invariants: empty ids, duplicate
// ids (first wins) and quantities below 1.
func sanitize(lines []domain.CartLine) []domain.CartLine {
	result := make([]domain.CartLine, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))

	for _, l := range lines {
		if l.ID == "" || l.Quantity < 1 {
			continue
		}
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}

		l.Price = coercePrice(l.Price)
		result = append(result, l)
	}

	return result
}
