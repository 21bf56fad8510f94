package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/keymaster/pos/internal/ledger"
	"github.com/shopspring/decimal"
)

// ShopIdentity is the header printed on every receipt.
type ShopIdentity struct {
	Name      string
	Tagline   string
	VATNumber string
	Currency  string
}

// ReceiptLine is one rendered sale item with its extended price.
type ReceiptLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Extended  string `json:"extended"`
}

// Receipt is a read-only projection of one committed sale for display or
// printing. All amounts are rounded to two decimals here and nowhere earlier.
type Receipt struct {
	ShopName     string        `json:"shopName"`
	Tagline      string        `json:"tagline,omitempty"`
	VATNumber    string        `json:"vatNumber,omitempty"`
	Currency     string        `json:"currency,omitempty"`
	SaleID       string        `json:"saleId"`
	Date         time.Time     `json:"date"`
	Lines        []ReceiptLine `json:"lines"`
	Subtotal     string        `json:"subtotal"`
	Tax          string        `json:"tax"`
	GrandTotal   string        `json:"grandTotal"`
	EmployeeName string        `json:"employeeName"`
}

// Presenter renders committed sales. It holds no mutable state; rendering the
// same sale twice produces identical output.
type Presenter struct {
	shop ShopIdentity
}

// NewPresenter creates a Presenter with the given shop identity.
func NewPresenter(shop ShopIdentity) *Presenter {
	return &Presenter{shop: shop}
}

// Present projects a sale into a Receipt for the on-screen dialog.
func (p *Presenter) Present(sale ledger.Sale) Receipt {
	lines := make([]ReceiptLine, len(sale.Items))
	for i, item := range sale.Items {
		lines[i] = ReceiptLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price.StringFixed(2),
			Extended:  item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
		}
	}
	return Receipt{
		ShopName:     p.shop.Name,
		Tagline:      p.shop.Tagline,
		VATNumber:    p.shop.VATNumber,
		Currency:     p.shop.Currency,
		SaleID:       sale.ID,
		Date:         sale.Date,
		Lines:        lines,
		Subtotal:     sale.Total.StringFixed(2),
		Tax:          sale.Tax.StringFixed(2),
		GrandTotal:   sale.GrandTotal.StringFixed(2),
		EmployeeName: sale.EmployeeName,
	}
}

// printWidth matches an 80mm thermal printer.
const printWidth = 40

// RenderPrint projects a sale into the fixed-width print layout.
func (p *Presenter) RenderPrint(sale ledger.Sale) string {
	receipt := p.Present(sale)
	var b strings.Builder

	center(&b, receipt.ShopName)
	if receipt.Tagline != "" {
		center(&b, receipt.Tagline)
	}
	center(&b, "Simplified Tax Invoice")
	rule(&b)

	row(&b, "Invoice:", receipt.SaleID)
	row(&b, "Date:", receipt.Date.Format(time.RFC3339))
	row(&b, "Cashier:", receipt.EmployeeName)
	rule(&b)

	for _, line := range receipt.Lines {
		row(&b, fmt.Sprintf("%s x%d", line.Name, line.Quantity), line.Extended)
	}
	rule(&b)

	row(&b, "Subtotal:", receipt.Subtotal)
	row(&b, "VAT (15%):", receipt.Tax)
	row(&b, "TOTAL:", withCurrency(receipt.GrandTotal, receipt.Currency))
	rule(&b)

	center(&b, "Thank you for your visit!")
	if receipt.VATNumber != "" {
		center(&b, "VAT No. "+receipt.VATNumber)
	}
	return b.String()
}

func withCurrency(amount, currency string) string {
	if currency == "" {
		return amount
	}
	return amount + " " + currency
}

func center(b *strings.Builder, text string) {
	if pad := (printWidth - len(text)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(text)
	b.WriteByte('\n')
}

func row(b *strings.Builder, left, right string) {
	gap := printWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(right)
	b.WriteByte('\n')
}

func rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", printWidth))
	b.WriteByte('\n')
}
