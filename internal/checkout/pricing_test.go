package checkout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProductWith(id uuid.UUID, price decimal.Decimal, stock int) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Blank",
		Category: catalog.CategoryHouse,
		Price:    price,
		Stock:    stock,
	}
}

func Test_CalculateTotals(t *testing.T) {
	testCases := []struct {
		name           string
		lines          []Line
		expectSubtotal string
		expectTax      string
		expectGrand    string
	}{
		{
			name:           "Empty cart - all zero",
			lines:          nil,
			expectSubtotal: "0.00",
			expectTax:      "0.00",
			expectGrand:    "0.00",
		},
		{
			name: "Single line",
			lines: []Line{
				{UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
			},
			expectSubtotal: "20.00",
			expectTax:      "3.00",
			expectGrand:    "23.00",
		},
		{
			name: "Multiple lines with cents",
			lines: []Line{
				{UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2},
				{UnitPrice: decimal.RequireFromString("3.99"), Quantity: 3},
			},
			expectSubtotal: "36.97",
			expectTax:      "5.55",
			expectGrand:    "42.52",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			totals := CalculateTotals(tc.lines)

			// then
			assert.Equal(t, tc.expectSubtotal, totals.Subtotal.StringFixed(2))
			assert.Equal(t, tc.expectTax, totals.Tax.StringFixed(2))
			assert.Equal(t, tc.expectGrand, totals.GrandTotal.StringFixed(2))
			assert.True(t, totals.Discount.IsZero())
		})
	}
}

func Test_CalculateTotals_Invariants(t *testing.T) {
	// given
	lines := []Line{
		{UnitPrice: decimal.RequireFromString("7.77"), Quantity: 13},
		{UnitPrice: decimal.RequireFromString("0.05"), Quantity: 100},
		{UnitPrice: decimal.RequireFromString("129.99"), Quantity: 1},
	}

	// when
	totals := CalculateTotals(lines)

	// then: grand total is exactly subtotal plus tax at full precision
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.Tax)))
	assert.True(t, totals.Tax.Equal(totals.Subtotal.Mul(TaxRate)))
}

func Test_CalculateTotals_NoHiddenState(t *testing.T) {
	// given: the same lines assembled through different add/remove histories
	a := uuid.New()
	b := uuid.New()
	price := decimal.RequireFromString("4.25")

	direct := NewCart()
	require.NoError(t, direct.AddItem(testProductWith(a, price, 10)))
	require.NoError(t, direct.AddItem(testProductWith(a, price, 10)))
	require.NoError(t, direct.AddItem(testProductWith(b, price, 10)))

	detour := NewCart()
	require.NoError(t, detour.AddItem(testProductWith(b, price, 10)))
	require.NoError(t, detour.AddItem(testProductWith(a, price, 10)))
	detour.RemoveItem(b)
	require.NoError(t, detour.AddItem(testProductWith(a, price, 10)))
	require.NoError(t, detour.AddItem(testProductWith(b, price, 10)))

	// when
	totalsDirect := CalculateTotals(direct.Lines())
	totalsDetour := CalculateTotals(detour.Lines())

	// then
	assert.True(t, totalsDirect.GrandTotal.Equal(totalsDetour.GrandTotal))
	assert.True(t, totalsDirect.Subtotal.Equal(totalsDetour.Subtotal))
	assert.True(t, totalsDirect.Tax.Equal(totalsDetour.Tax))
}
