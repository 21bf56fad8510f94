package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, embedded database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns all available products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product Product) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ApplyDecrements reduces stock for every listed product as one unit.
	// If any decrement would drive a stock level below zero the whole batch
	// is rejected with ErrInsufficientStock and nothing changes.
	ApplyDecrements(ctx context.Context, decrements []StockDecrement) error

	// ReplaceAll overwrites the entire catalog with the given products.
	// Used by backup restore.
	ReplaceAll(ctx context.Context, products []Product) error
}
