// Package ledger holds the append-only history of completed sales. Sales are
// created exactly once at checkout, never mutated or deleted afterwards.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem is an immutable snapshot of one cart line at checkout time. It is
// fully decoupled from the live product, so later catalog edits do not alter
// historical records.
type SaleItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Sale is one completed checkout. Discount is always zero in the current
// scope but kept in the shape.
type Sale struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Items        []SaleItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Discount     decimal.Decimal `json:"discount"`
	Tax          decimal.Decimal `json:"tax"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	EmployeeID   uuid.UUID       `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
}
