// Package storage provides an in-memory client storage.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront/internal/port"
)

type Memory struct {
	mu     sync.RWMutex
	owners map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		owners: make(map[string]map[string]string),
	}
}

func (m *Memory) ForOwner(ownerID string) (port.ClientStorage, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &memoryClient{m: m, ownerID: ownerID}, nil
}

type memoryClient struct {
	m       *Memory
	ownerID string
}

func (c *memoryClient) GetItem(_ context.Context, key string) (string, bool, error) {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()

	value, ok := c.m.owners[c.ownerID][key]
	return value, ok, nil
}

func (c *memoryClient) SetItem(_ context.Context, key, value string) error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	items, ok := c.m.owners[c.ownerID]
	if !ok {
		items = make(map[string]string)
		c.m.owners[c.ownerID] = items
	}
	items[key] = value

	return nil
}
