// Package checkout implements the cart-to-sale pipeline: cart building with
// stock limits, total calculation, the checkout commit, and receipt
// presentation.
package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/catalog"
	"github.com/shopspring/decimal"
)

var (
	// ErrOutOfStock is returned when a product with zero stock is added to
	// the cart.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrInsufficientStock is returned when the cart already holds all
	// available units of a product.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Line is one product-quantity-price tuple in the cart. Name and UnitPrice
// are captured at add time; only Quantity mutates afterwards.
type Line struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Cart is the transient, ordered collection of line items for the sale in
// progress. It belongs to a single checkout session and is not safe for
// concurrent use; the owning session serializes access.
type Cart struct {
	lines []Line
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the product in the cart. The product's stock is
// checked at add time but not reserved; the catalog is untouched until
// checkout. Adding the same product again increments its line quantity.
func (c *Cart) AddItem(product catalog.Product) error {
	if product.Stock <= 0 {
		return fmt.Errorf("product %s: %w", product.Name, ErrOutOfStock)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			if c.lines[i].Quantity >= product.Stock {
				return fmt.Errorf("product %s: available %d: %w", product.Name, product.Stock, ErrInsufficientStock)
			}
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	})
	return nil
}

// RemoveItem removes the whole line for the given product regardless of
// quantity. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current cart lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
