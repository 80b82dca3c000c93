package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/relaxrp/storefront/internal/domain"
	"github.com/relaxrp/storefront/internal/storage"
)

// Store holds the local view of what the shopper intends to buy. Items keep
// insertion order; there is at most one line per product id. Every mutation
// writes the whole cart back to durable storage before returning, so a reader
// immediately after never sees storage behind memory.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartItem
	store  storage.Store
	logger *zap.Logger
}

func New(store storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{store: store, logger: logger}
}

// Restore loads the persisted cart. Absent or malformed state degrades to an
// empty cart; Restore never fails the caller.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Get(ctx, storage.KeyCart)
	if errors.Is(err, storage.ErrNotFound) {
		s.items = nil
		return
	}
	if err != nil {
		s.logger.Warn("cart restore failed, starting empty", zap.Error(err))
		s.items = nil
		return
	}

	var items []domain.CartItem
	if errUnmarshal := json.Unmarshal(data, &items); errUnmarshal != nil {
		s.logger.Warn("stored cart is malformed, starting empty", zap.Error(errUnmarshal))
		s.items = nil
		return
	}
	s.items = items
}

// AddItem merges the product into the cart. An existing line gets quantity+1
// and keeps its original name and price snapshot; otherwise a new line with
// quantity 1 is appended.
func (s *Store) AddItem(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, domain.CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    1,
	})
	return s.persist(ctx)
}

// UpdateQuantity applies a signed delta, clamping at 1. Unknown product ids
// are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			q := s.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.items[i].Quantity = q
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// Total is recomputed from the items on every call, never cached.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, item := range s.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Items returns a copy in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persist is called with the lock held.
func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if errSet := s.store.Set(ctx, storage.KeyCart, data); errSet != nil {
		s.logger.Error("cart persist failed", zap.Error(errSet))
		return errSet
	}
	return nil
}
