package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/catalog"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/internal/staff"
)

// receiptIDPrefix keeps receipt numbers recognizable as invoices.
const receiptIDPrefix = "INV-"

// Coordinator is the only component allowed to turn a cart into a permanent
// sale record and mutate catalog stock.
type Coordinator struct {
	catalog catalog.ProductStore
	ledger  ledger.SaleStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewCoordinator creates a Coordinator over the given catalog and ledger stores.
func NewCoordinator(catalogStore catalog.ProductStore, ledgerStore ledger.SaleStore, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		catalog: catalogStore,
		ledger:  ledgerStore,
		logger:  logger.With("component", "checkout"),
		now:     time.Now,
	}
}

// AddToCart looks up the product and puts one unit in the cart, enforcing the
// stock limit at add time. The catalog is not mutated.
func (co *Coordinator) AddToCart(ctx context.Context, cart *Cart, productID uuid.UUID) error {
	product, err := co.catalog.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	return cart.AddItem(*product)
}

// Checkout commits the cart as one sale. An empty cart is a no-op returning
// (nil, nil). Every line is re-validated against live stock first; any
// shortfall rejects the whole sale and leaves catalog, ledger and cart
// untouched. On success the catalog stock is decremented, the sale appended
// to the ledger and the cart cleared.
func (co *Coordinator) Checkout(ctx context.Context, cart *Cart, cashier staff.Employee) (*ledger.Sale, error) {
	if cart.Empty() {
		return nil, nil
	}

	lines := cart.Lines()

	// Re-validate against live stock. Stock may have moved since the lines
	// were added (inventory edits happen on the same catalog).
	decrements := make([]catalog.StockDecrement, 0, len(lines))
	for _, line := range lines {
		product, err := co.catalog.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %s: %w", line.ProductID, err)
		}
		if product.Stock < line.Quantity {
			co.logger.WarnContext(ctx, "Checkout rejected, stock changed since add",
				"product_id", line.ProductID, "available", product.Stock, "requested", line.Quantity)
			return nil, fmt.Errorf("product %s: available %d, requested %d: %w",
				product.Name, product.Stock, line.Quantity, ErrInsufficientStock)
		}
		decrements = append(decrements, catalog.StockDecrement{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	items := make([]ledger.SaleItem, len(lines))
	for i, line := range lines {
		items[i] = ledger.SaleItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		}
	}
	totals := CalculateTotals(lines)

	sale := ledger.Sale{
		ID:           receiptIDPrefix + uuid.NewString(),
		Date:         co.now().UTC(),
		Items:        items,
		Total:        totals.Subtotal,
		Discount:     totals.Discount,
		Tax:          totals.Tax,
		GrandTotal:   totals.GrandTotal,
		EmployeeID:   cashier.ID,
		EmployeeName: cashier.Name,
	}

	if err := co.catalog.ApplyDecrements(ctx, decrements); err != nil {
		return nil, fmt.Errorf("failed to decrement stock: %w", err)
	}
	if err := co.ledger.Append(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to record sale %s: %w", sale.ID, err)
	}
	cart.Clear()

	co.logger.InfoContext(ctx, "Sale completed",
		"sale_id", sale.ID,
		"items", len(sale.Items),
		"grand_total", sale.GrandTotal.StringFixed(2),
		"employee", sale.EmployeeName,
	)
	return &sale, nil
}
