// Package backup exports and restores the full shop state as one JSON
// document with three named collections: products, employees and sales.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/keymaster/pos/internal/catalog"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/internal/staff"
)

// ErrInvalidDocument is returned for malformed or incomplete backup files.
// Existing state is never touched when this is returned.
var ErrInvalidDocument = errors.New("invalid backup document")

// Document is the on-disk backup format. All three fields are required.
type Document struct {
	Products  []catalog.Product `json:"products"`
	Employees []staff.Employee  `json:"employees"`
	Sales     []ledger.Sale     `json:"sales"`
}

// Service exports and imports full snapshots across the three stores.
type Service struct {
	products  catalog.ProductStore
	employees staff.EmployeeStore
	sales     ledger.SaleStore
	logger    *slog.Logger
}

// NewService creates a backup Service over the three stores.
func NewService(products catalog.ProductStore, employees staff.EmployeeStore, sales ledger.SaleStore, logger *slog.Logger) *Service {
	return &Service{
		products:  products,
		employees: employees,
		sales:     sales,
		logger:    logger.With("component", "backup"),
	}
}

// Export collects the full state of all three collections.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}
	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export employees: %w", err)
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export sales: %w", err)
	}
	return &Document{
		Products:  products,
		Employees: employees,
		Sales:     sales,
	}, nil
}

// Import parses and fully validates the document before overwriting any
// collection. A document missing any of the three top-level fields is
// rejected with ErrInvalidDocument and existing state stays untouched.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, field := range []string{"products", "employees", "sales"} {
		if _, ok := fields[field]; !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidDocument, field)
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := s.products.ReplaceAll(ctx, doc.Products); err != nil {
		return fmt.Errorf("failed to restore products: %w", err)
	}
	if err := s.employees.ReplaceAll(ctx, doc.Employees); err != nil {
		return fmt.Errorf("failed to restore employees: %w", err)
	}
	if err := s.sales.ReplaceAll(ctx, doc.Sales); err != nil {
		return fmt.Errorf("failed to restore sales: %w", err)
	}

	s.logger.InfoContext(ctx, "Backup restored",
		"products", len(doc.Products),
		"employees", len(doc.Employees),
		"sales", len(doc.Sales),
	)
	return nil
}
