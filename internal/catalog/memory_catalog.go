package catalog

import (
	"context"
	"sync"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/shopspring/decimal"
)

// MemoryCatalog implements Catalog with in-memory storage.
// List returns products in insertion order.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	ordering []string
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products: make(map[string]*domain.Product),
	}
}

func (c *MemoryCatalog) Get(_ context.Context, productID string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, exists := c.products[productID]
	if !exists {
		return nil, ErrProductNotFound
	}

	cp := *p
	return &cp, nil
}

func (c *MemoryCatalog) List(_ context.Context) ([]*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*domain.Product, 0, len(c.ordering))
	for _, id := range c.ordering {
		cp := *c.products[id]
		result = append(result, &cp)
	}
	return result, nil
}

func (c *MemoryCatalog) Upsert(_ context.Context, product domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[product.ID]; !exists {
		c.ordering = append(c.ordering, product.ID)
	}
	c.products[product.ID] = &product
	return nil
}

func (c *MemoryCatalog) SetPrice(_ context.Context, productID string, price decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, exists := c.products[productID]
	if !exists {
		return ErrProductNotFound
	}
	p.Price = price
	return nil
}
