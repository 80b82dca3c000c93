package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/relaxrp/storefront/internal/domain"
)

const defaultTTL = time.Minute

// ProductLister is the backend read surface the cache sits in front of.
type ProductLister interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
}

type entry struct {
	products  []domain.Product
	fetchedAt time.Time
}

// Cache is a read-through product cache keyed by category. Concurrent misses
// for the same category collapse into a single backend fetch.
type Cache struct {
	lister ProductLister
	ttl    time.Duration
	sfg    singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
}

func New(lister ProductLister) *Cache {
	return &Cache{
		lister:  lister,
		ttl:     defaultTTL,
		entries: make(map[string]entry),
	}
}

func (c *Cache) WithTTL(ttl time.Duration) *Cache {
	c.ttl = ttl
	return c
}

func (c *Cache) Products(ctx context.Context, category string) ([]domain.Product, error) {
	c.mu.RLock()
	e, ok := c.entries[category]
	c.mu.RUnlock()
	if ok && time.Since(e.fetchedAt) < c.ttl {
		return e.products, nil
	}

	v, err, _ := c.sfg.Do(category, func() (interface{}, error) {
		products, errList := c.lister.ListProducts(ctx, category)
		if errList != nil {
			return nil, errList
		}
		c.mu.Lock()
		c.entries[category] = entry{products: products, fetchedAt: time.Now()}
		c.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// Invalidate drops every cached listing. Called after admin product mutations.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
