package rest

import (
	"fmt"
	"net/http"

	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/pkg/web"
)

const lowStockThreshold = 5

// ReportSummaryResponse is the dashboard aggregation plus the advisory tip.
type ReportSummaryResponse struct {
	ledger.Summary
	ProductCount  int    `json:"productCount"`
	LowStockCount int    `json:"lowStockCount"`
	StaffCount    int    `json:"staffCount"`
	Insight       string `json:"insight"`
}

// SalesHistory lists all recorded sales, newest first.
func (h *Handler) SalesHistory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sales, err := h.sales.History(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving sales history", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch sales")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, sales)
}

// ReportSummary aggregates the ledger and catalog for the dashboard and asks
// the insight collaborator for a tip. The tip is best-effort and never fails
// the request.
func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	summary, err := h.sales.Summarize(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error summarizing sales", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to build report summary")
		return
	}
	products, err := h.products.FindAll(r.Context(), "")
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving products for summary", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to build report summary")
		return
	}
	employees, err := h.employees.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving employees for summary", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to build report summary")
		return
	}

	lowStock := 0
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			lowStock++
		}
	}

	prompt := fmt.Sprintf("Total sales: %s, products: %d, low-stock products: %d",
		summary.TotalRevenue.StringFixed(2), len(products), lowStock)
	tip := h.insights.BusinessTip(r.Context(), prompt)

	web.RespondJSON(w, mLogger, http.StatusOK, ReportSummaryResponse{
		Summary:       *summary,
		ProductCount:  len(products),
		LowStockCount: lowStock,
		StaffCount:    len(employees),
		Insight:       tip,
	})
}
