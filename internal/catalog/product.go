// Package catalog holds the shared collection of sellable products and their
// stock levels. It is read by the cashier during cart building and mutated by
// checkout stock decrements and inventory management.
package catalog

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when no product exists with the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a stock decrement would drive the
	// stock level below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Category classifies a product within the shop's four lines of business.
type Category string

const (
	CategoryHouse       Category = "house"
	CategoryCar         Category = "car"
	CategoryProgramming Category = "programming"
	CategoryAccessory   Category = "accessory"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryHouse, CategoryCar, CategoryProgramming, CategoryAccessory:
		return true
	}
	return false
}

// Product represents a sellable item. Code is a free-text SKU and is not
// guaranteed unique.
type Product struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"`
	Code     string          `json:"code"`
}

// StockDecrement describes one product's stock reduction within a checkout.
type StockDecrement struct {
	ProductID uuid.UUID
	Quantity  int
}
