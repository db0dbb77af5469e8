package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sangeeth-21/velkani-admin/internal/domain/cart"
	"github.com/sangeeth-21/velkani-admin/internal/domain/catalog"
	"github.com/sangeeth-21/velkani-admin/internal/pricing"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// InsufficientStockError rejects an add that exceeds the tier's stock.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available in stock", e.Available)
}

// IsValidationError reports whether err is a rejection the operator should
// see as-is, as opposed to a storage failure.
func IsValidationError(err error) bool {
	var stockErr *InsufficientStockError
	return errors.Is(err, ErrInvalidQuantity) || errors.As(err, &stockErr)
}

// Store owns the in-memory cart and writes it through to storage on every
// mutation. Items are denormalized snapshots: once in the cart an entry is
// never updated from the catalog again.
type Store struct {
	mu      sync.Mutex
	items   []cart.Item
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load replaces the in-memory cart with the stored one. Absent or corrupt
// storage yields an empty cart without error; only a storage transport
// failure surfaces.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Add puts qty units of the given tier in the cart. If the same
// (product, price point) pair is already present its quantity is summed and
// the original snapshot is kept, so a later price change never splits or
// reprices an existing entry.
func (s *Store) Add(ctx context.Context, p catalog.Product, pp catalog.PricePoint, qty int) (cart.Item, error) {
	if qty < 1 {
		return cart.Item{}, ErrInvalidQuantity
	}
	r := pricing.Resolve(pp)
	if qty > r.Stock {
		return cart.Item{}, &InsufficientStockError{Available: r.Stock}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID && s.items[i].PricePointID == pp.ID {
			s.items[i].Quantity += qty
			if err := s.persist(ctx); err != nil {
				s.items[i].Quantity -= qty
				return cart.Item{}, err
			}
			return s.items[i], nil
		}
	}

	item := cart.Item{
		ProductID:       p.ID,
		PricePointID:    pp.ID,
		Quantity:        qty,
		Price:           r.Price,
		MRP:             r.MRP,
		Name:            p.Name,
		Image:           p.PrimaryImage(),
		PricePointLabel: r.Label,
		DiscountPercent: r.DiscountPercent,
	}
	s.items = append(s.items, item)
	if err := s.persist(ctx); err != nil {
		s.items = s.items[:len(s.items)-1]
		return cart.Item{}, err
	}
	return item, nil
}

// RemoveItem drops a single (product, price point) entry.
func (s *Store) RemoveItem(ctx context.Context, productID, pricePointID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ProductID == productID && it.PricePointID == pricePointID {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return s.persist(ctx)
}

// RemoveProduct drops every entry referencing the product. Called when a
// product is deleted upstream so the cart never points at a dead id.
func (s *Store) RemoveProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ProductID == productID {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist(ctx)
}

// Items returns a copy of the current entries.
func (s *Store) Items() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of all entry quantities, the number shown on the
// cart badge.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

// persist writes the whole cart; callers hold the lock.
func (s *Store) persist(ctx context.Context) error {
	if err := s.storage.Save(ctx, s.items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
