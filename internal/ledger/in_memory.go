package ledger

import (
	"context"
	"sync"
)

// inMemory implements SaleStore using an in-memory slice.
type inMemory struct {
	mu    sync.RWMutex
	sales []Sale
}

var _ SaleStore = (*inMemory)(nil)

// NewInMemoryStore creates a new instance of SaleStore
func NewInMemoryStore() SaleStore {
	return &inMemory{}
}

func (s *inMemory) Append(_ context.Context, sale Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = append(s.sales, sale)
	return nil
}

func (s *inMemory) FindByID(_ context.Context, id string) (*Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sale := range s.sales {
		if sale.ID == id {
			found := sale
			return &found, nil
		}
	}
	return nil, ErrSaleNotFound
}

func (s *inMemory) List(_ context.Context) ([]Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Sale, len(s.sales))
	copy(list, s.sales)
	return list, nil
}

func (s *inMemory) ReplaceAll(_ context.Context, sales []Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = make([]Sale, len(sales))
	copy(s.sales, sales)
	return nil
}
