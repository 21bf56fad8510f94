package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendTestSales(t *testing.T, store SaleStore, grandTotals ...string) []Sale {
	t.Helper()
	sales := make([]Sale, 0, len(grandTotals))
	for i, total := range grandTotals {
		sale := Sale{
			ID:           fmt.Sprintf("INV-%s", uuid.NewString()),
			Date:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
			GrandTotal:   decimal.RequireFromString(total),
			EmployeeID:   uuid.New(),
			EmployeeName: "Aisha",
		}
		require.NoError(t, store.Append(context.Background(), sale))
		sales = append(sales, sale)
	}
	return sales
}

func Test_SaleService_FindByID(t *testing.T) {
	// given
	store := NewInMemoryStore()
	service := NewService(store)
	sales := appendTestSales(t, store, "74.75", "11.50")

	// when
	found, err := service.FindByID(context.Background(), sales[1].ID)

	// then
	require.NoError(t, err)
	assert.Equal(t, sales[1].ID, found.ID)
	assert.True(t, found.GrandTotal.Equal(decimal.RequireFromString("11.50")))
}

func Test_SaleService_FindByID_NotFound(t *testing.T) {
	// given
	service := NewService(NewInMemoryStore())

	// when
	_, err := service.FindByID(context.Background(), "INV-missing")

	// then
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func Test_SaleService_History_NewestFirst(t *testing.T) {
	// given
	store := NewInMemoryStore()
	service := NewService(store)
	sales := appendTestSales(t, store, "10.00", "20.00", "30.00")

	// when
	history, err := service.History(context.Background())

	// then
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, sales[2].ID, history[0].ID)
	assert.Equal(t, sales[1].ID, history[1].ID)
	assert.Equal(t, sales[0].ID, history[2].ID)
}

func Test_SaleService_Summarize(t *testing.T) {
	testCases := []struct {
		name          string
		grandTotals   []string
		expectedTotal string
		expectedCount int
	}{
		{
			name:          "Success - empty ledger",
			expectedTotal: "0",
		},
		{
			name:          "Success - totals summed without rounding",
			grandTotals:   []string{"74.75", "11.50", "0.015"},
			expectedTotal: "86.265",
			expectedCount: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			store := NewInMemoryStore()
			service := NewService(store)
			appendTestSales(t, store, tc.grandTotals...)
			// when
			summary, err := service.Summarize(context.Background())
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCount, summary.SaleCount)
			assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString(tc.expectedTotal)),
				"got %s", summary.TotalRevenue)
		})
	}
}
