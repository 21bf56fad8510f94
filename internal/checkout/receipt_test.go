package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale() ledger.Sale {
	return ledger.Sale{
		ID:   "INV-123e4567-e89b-12d3-a456-426614174000",
		Date: time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC),
		Items: []ledger.SaleItem{
			{ProductID: uuid.New(), Name: "House key blank", Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{ProductID: uuid.New(), Name: "Key ring", Quantity: 1, Price: decimal.RequireFromString("3.50")},
		},
		Total:        decimal.RequireFromString("23.50"),
		Discount:     decimal.Zero,
		Tax:          decimal.RequireFromString("3.525"),
		GrandTotal:   decimal.RequireFromString("27.025"),
		EmployeeID:   uuid.New(),
		EmployeeName: "Aisha",
	}
}

func testPresenter() *Presenter {
	return NewPresenter(ShopIdentity{
		Name:      "KeyMaster Store",
		Tagline:   "Keys cut while you wait",
		VATNumber: "3000XXXXXXXXXXX",
		Currency:  "SAR",
	})
}

func Test_Presenter_Present(t *testing.T) {
	// given
	presenter := testPresenter()
	sale := testSale()

	// when
	receipt := presenter.Present(sale)

	// then
	assert.Equal(t, "KeyMaster Store", receipt.ShopName)
	assert.Equal(t, sale.ID, receipt.SaleID)
	assert.Equal(t, "Aisha", receipt.EmployeeName)
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "20.00", receipt.Lines[0].Extended)
	assert.Equal(t, "3.50", receipt.Lines[1].Extended)
	// amounts are rounded to two decimals only at presentation
	assert.Equal(t, "23.50", receipt.Subtotal)
	assert.Equal(t, "3.53", receipt.Tax)
	assert.Equal(t, "27.03", receipt.GrandTotal)
}

func Test_Presenter_RenderPrint(t *testing.T) {
	// given
	presenter := testPresenter()
	sale := testSale()

	// when
	printed := presenter.RenderPrint(sale)

	// then
	assert.Contains(t, printed, "KeyMaster Store")
	assert.Contains(t, printed, "Simplified Tax Invoice")
	assert.Contains(t, printed, sale.ID)
	assert.Contains(t, printed, "House key blank x2")
	assert.Contains(t, printed, "VAT (15%):")
	assert.Contains(t, printed, "27.03 SAR")
	assert.Contains(t, printed, "VAT No. 3000XXXXXXXXXXX")
	assert.Contains(t, printed, strings.Repeat("-", printWidth))
}

func Test_Presenter_RenderingIsIdempotent(t *testing.T) {
	// given
	presenter := testPresenter()
	sale := testSale()

	// when
	first := presenter.Present(sale)
	second := presenter.Present(sale)
	printedFirst := presenter.RenderPrint(sale)
	printedSecond := presenter.RenderPrint(sale)

	// then
	assert.Equal(t, first, second)
	assert.Equal(t, printedFirst, printedSecond)
}
