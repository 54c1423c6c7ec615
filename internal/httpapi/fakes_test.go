package httpapi

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type fakeProducts struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product
	likes    map[uuid.UUID]map[string]bool
	comments []domain.Comment
}

func newFakeProducts(products ...domain.Product) *fakeProducts {
	f := &fakeProducts{
		products: make(map[uuid.UUID]domain.Product),
		likes:    make(map[uuid.UUID]map[string]bool),
	}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProducts) ListProducts(context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b domain.Product) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result, nil
}

func (f *fakeProducts) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProducts) CreateProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	if p.Category == "" {
		p.Category = domain.DefaultCategory
	}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProducts) UpdateProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	old, ok := f.products[p.ID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.products[id]
	delete(f.products, id)
	return ok, nil
}

func (f *fakeProducts) ToggleLike(_ context.Context, productID uuid.UUID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[productID]; !ok {
		return false, domain.ErrNotFound
	}
	if f.likes[productID] == nil {
		f.likes[productID] = make(map[string]bool)
	}

	liked := !f.likes[productID][userID]
	f.likes[productID][userID] = liked
	return liked, nil
}

func (f *fakeProducts) ListComments(_ context.Context, productID uuid.UUID) ([]domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Comment
	for _, c := range f.comments {
		if c.ProductID == productID {
			result = append(result, c)
		}
	}
	slices.SortFunc(result, func(a, b domain.Comment) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return result, nil
}

func (f *fakeProducts) AddComment(_ context.Context, c domain.Comment) (domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[c.ProductID]; !ok {
		return domain.Comment{}, domain.ErrNotFound
	}

	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	f.comments = append(f.comments, c)
	return c, nil
}

type fakeMessages struct {
	mu       sync.Mutex
	messages []domain.Message
}

func (f *fakeMessages) CreateMessage(_ context.Context, m domain.Message) (domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeMessages) ListMessages(context.Context) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.messages), nil
}

func (f *fakeMessages) MarkRead(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMessages) DeleteMessage(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages = slices.Delete(f.messages, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

type fakeStats struct {
	stats domain.Stats
	err   error
}

func (f fakeStats) GetStats(context.Context) (domain.Stats, error) {
	return f.stats, f.err
}

type fakeOrders struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (f *fakeOrders) CreateOrder(_ context.Context, o domain.Order) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o.ID = uuid.New()
	f.orders = append(f.orders, o)
	return o, nil
}

func (f *fakeOrders) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

type fakeGeo struct {
	code string
	err  error

	mu  sync.Mutex
	ips []string
}

func (f *fakeGeo) LookupCountry(_ context.Context, ip string) (string, error) {
	f.mu.Lock()
	f.ips = append(f.ips, ip)
	f.mu.Unlock()

	return f.code, f.err
}

var errGeoDown = errors.New("geo service down")
