package checkout

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/keymaster/pos/internal/catalog"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/internal/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func testCoordinator(t *testing.T) (*Coordinator, catalog.ProductStore, ledger.SaleStore) {
	t.Helper()
	catalogStore := catalog.NewInMemoryStore()
	saleStore := ledger.NewInMemoryStore()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewCoordinator(catalogStore, saleStore, logger), catalogStore, saleStore
}

func testCashier() staff.Employee {
	return staff.Employee{
		ID:   uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Name: "Aisha",
		Role: staff.RoleSales,
	}
}

func Test_Coordinator_Checkout_EmptyCartIsNoOp(t *testing.T) {
	// given
	co, _, saleStore := testCoordinator(t)
	cart := NewCart()

	// when
	sale, err := co.Checkout(context.Background(), cart, testCashier())

	// then
	require.NoError(t, err)
	assert.Nil(t, sale)
	sales, err := saleStore.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func Test_Coordinator_Checkout_Success(t *testing.T) {
	// given: catalog stock {A: 5, B: 3}, cart [(A, 2), (B, 1)]
	co, catalogStore, saleStore := testCoordinator(t)
	ctx := context.Background()

	productA, err := catalogStore.Create(ctx, catalog.Product{
		Name: "House key blank", Category: catalog.CategoryHouse,
		Price: decimal.RequireFromString("10.00"), Stock: 5,
	})
	require.NoError(t, err)
	productB, err := catalogStore.Create(ctx, catalog.Product{
		Name: "Car remote shell", Category: catalog.CategoryCar,
		Price: decimal.RequireFromString("45.00"), Stock: 3,
	})
	require.NoError(t, err)

	cart := NewCart()
	require.NoError(t, co.AddToCart(ctx, cart, productA.ID))
	require.NoError(t, co.AddToCart(ctx, cart, productA.ID))
	require.NoError(t, co.AddToCart(ctx, cart, productB.ID))

	// when
	sale, err := co.Checkout(ctx, cart, testCashier())

	// then
	require.NoError(t, err)
	require.NotNil(t, sale)

	// stock decremented to {A: 3, B: 2}
	updatedA, err := catalogStore.FindByID(ctx, productA.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updatedA.Stock)
	updatedB, err := catalogStore.FindByID(ctx, productB.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updatedB.Stock)

	// exactly one sale appended with the right shape
	sales, err := saleStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	recorded := sales[0]
	assert.Equal(t, sale.ID, recorded.ID)
	require.Len(t, recorded.Items, 2)
	assert.Equal(t, "65.00", recorded.Total.StringFixed(2))
	assert.Equal(t, "9.75", recorded.Tax.StringFixed(2))
	assert.Equal(t, "74.75", recorded.GrandTotal.StringFixed(2))
	assert.True(t, recorded.Discount.IsZero())
	assert.Equal(t, testCashier().ID, recorded.EmployeeID)
	assert.Equal(t, "Aisha", recorded.EmployeeName)

	// the cart is empty afterwards
	assert.True(t, cart.Empty())
}

func Test_Coordinator_Checkout_SnapshotsDecoupledFromCatalog(t *testing.T) {
	// given
	co, catalogStore, saleStore := testCoordinator(t)
	ctx := context.Background()

	product, err := catalogStore.Create(ctx, catalog.Product{
		Name: "Smart lock fob", Category: catalog.CategoryProgramming,
		Price: decimal.RequireFromString("150.00"), Stock: 4,
	})
	require.NoError(t, err)

	cart := NewCart()
	require.NoError(t, co.AddToCart(ctx, cart, product.ID))
	_, err = co.Checkout(ctx, cart, testCashier())
	require.NoError(t, err)

	// when: the product is renamed and repriced after the sale
	product.Name = "Renamed fob"
	product.Price = decimal.RequireFromString("999.00")
	product.Stock = 3
	_, err = catalogStore.Update(ctx, *product)
	require.NoError(t, err)

	// then: the historical record is unchanged
	sales, err := saleStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Smart lock fob", sales[0].Items[0].Name)
	assert.Equal(t, "150.00", sales[0].Items[0].Price.StringFixed(2))
}

func Test_Coordinator_Checkout_RejectsWholeSaleOnStockShortfall(t *testing.T) {
	// given: stock drops between add-to-cart and checkout
	co, catalogStore, saleStore := testCoordinator(t)
	ctx := context.Background()

	productA, err := catalogStore.Create(ctx, catalog.Product{
		Name: "House key blank", Category: catalog.CategoryHouse,
		Price: decimal.RequireFromString("10.00"), Stock: 5,
	})
	require.NoError(t, err)
	productB, err := catalogStore.Create(ctx, catalog.Product{
		Name: "Key ring", Category: catalog.CategoryAccessory,
		Price: decimal.RequireFromString("3.00"), Stock: 2,
	})
	require.NoError(t, err)

	cart := NewCart()
	require.NoError(t, co.AddToCart(ctx, cart, productA.ID))
	require.NoError(t, co.AddToCart(ctx, cart, productB.ID))
	require.NoError(t, co.AddToCart(ctx, cart, productB.ID))

	// inventory editing depletes B before the checkout commits
	productB.Stock = 1
	_, err = catalogStore.Update(ctx, *productB)
	require.NoError(t, err)

	// when
	sale, err := co.Checkout(ctx, cart, testCashier())

	// then: the whole sale is rejected, nothing mutated
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, sale)

	unchangedA, err := catalogStore.FindByID(ctx, productA.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, unchangedA.Stock)
	sales, err := saleStore.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.False(t, cart.Empty(), "the cart must survive a rejected checkout")
}

func Test_Coordinator_Checkout_SaleIDsUnique(t *testing.T) {
	// given
	co, catalogStore, saleStore := testCoordinator(t)
	ctx := context.Background()

	product, err := catalogStore.Create(ctx, catalog.Product{
		Name: "House key blank", Category: catalog.CategoryHouse,
		Price: decimal.RequireFromString("10.00"), Stock: 100,
	})
	require.NoError(t, err)

	// when: many checkouts in rapid succession
	const checkouts = 50
	for i := 0; i < checkouts; i++ {
		cart := NewCart()
		require.NoError(t, co.AddToCart(ctx, cart, product.ID))
		_, err := co.Checkout(ctx, cart, testCashier())
		require.NoError(t, err)
	}

	// then: every sale id is distinct
	sales, err := saleStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, checkouts)
	seen := make(map[string]struct{}, checkouts)
	for _, sale := range sales {
		_, dup := seen[sale.ID]
		assert.False(t, dup, "duplicate sale id %s", sale.ID)
		seen[sale.ID] = struct{}{}
	}
}
