package checkout

import "github.com/shopspring/decimal"

// TaxRate is the fixed 15% VAT applied to every sale.
var TaxRate = decimal.RequireFromString("0.15")

// Totals carries the derived amounts for a set of cart lines. Values are kept
// at full precision; rounding to two decimals happens only at presentation.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// CalculateTotals derives subtotal, tax and grand total from the given lines.
// It is a pure function: totals are recomputed on every cart change and never
// stored alongside the cart.
func CalculateTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal:   subtotal,
		Discount:   decimal.Zero,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}
