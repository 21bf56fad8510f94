package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary aggregates the ledger for the reports screen.
type Summary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	SaleCount    int             `json:"saleCount"`
}

// SaleService exposes read operations over the sale history.
type SaleService interface {
	// FindByID retrieves a single sale by its receipt ID.
	FindByID(ctx context.Context, id string) (*Sale, error)

	// History returns all sales, newest first.
	History(ctx context.Context) ([]Sale, error)

	// Summarize folds the whole ledger into a Summary.
	Summarize(ctx context.Context) (*Summary, error)
}

// Service implements SaleService.
type Service struct {
	repository SaleStore
}

var _ SaleService = (*Service)(nil)

// NewService creates a new instance of SaleService with the provided repository.
func NewService(repo SaleStore) *Service {
	return &Service{
		repository: repo,
	}
}

// FindByID retrieves a single sale by its receipt ID.
func (s *Service) FindByID(ctx context.Context, id string) (*Sale, error) {
	sale, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sale %s: %w", id, err)
	}
	return sale, nil
}

// History returns all sales, newest first.
func (s *Service) History(ctx context.Context) ([]Sale, error) {
	sales, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	// The store keeps insertion order; the reports screen wants newest first.
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}
	return sales, nil
}

// Summarize folds the whole ledger into a Summary.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	sales, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.GrandTotal)
	}
	return &Summary{
		TotalRevenue: total,
		SaleCount:    len(sales),
	}, nil
}
