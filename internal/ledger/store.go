package ledger

import (
	"context"
	"errors"
)

// ErrSaleNotFound is returned when no sale exists with the given ID.
var ErrSaleNotFound = errors.New("sale not found")

// SaleStore is an append-only store of completed sales. Implementations must
// preserve insertion order.
type SaleStore interface {
	// Append records a new completed sale.
	Append(ctx context.Context, sale Sale) error

	// FindByID retrieves a single sale by its receipt ID.
	// Returns ErrSaleNotFound if no sale exists with the given ID.
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List returns every recorded sale in insertion order.
	List(ctx context.Context) ([]Sale, error)

	// ReplaceAll overwrites the full sale history. Used by backup restore;
	// the given order becomes the new insertion order.
	ReplaceAll(ctx context.Context, sales []Sale) error
}
