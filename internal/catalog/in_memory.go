package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// inMemory implements ProductStore using an in-memory map. Used in tests and
// wherever a throwaway catalog is convenient.
type inMemory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

var _ ProductStore = (*inMemory)(nil)

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[uuid.UUID]Product),
	}
}

func (s *inMemory) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *inMemory) Create(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products[product.ID] = product
	return &product, nil
}

func (s *inMemory) Update(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return nil, ErrProductNotFound
	}
	s.products[product.ID] = product
	return &product, nil
}

func (s *inMemory) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *inMemory) ApplyDecrements(_ context.Context, decrements []StockDecrement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before touching anything.
	for _, dec := range decrements {
		p, ok := s.products[dec.ProductID]
		if !ok {
			return fmt.Errorf("product %s: %w", dec.ProductID, ErrProductNotFound)
		}
		if p.Stock < dec.Quantity {
			return fmt.Errorf("product %s: available %d, requested %d: %w",
				dec.ProductID, p.Stock, dec.Quantity, ErrInsufficientStock)
		}
	}
	for _, dec := range decrements {
		p := s.products[dec.ProductID]
		p.Stock -= dec.Quantity
		s.products[dec.ProductID] = p
	}
	return nil
}

func (s *inMemory) ReplaceAll(_ context.Context, products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		s.products[p.ID] = p
	}
	return nil
}
