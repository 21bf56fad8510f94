package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/catalog"
	"github.com/keymaster/pos/internal/checkout"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/pkg/web"
)

// CartView is the cart contents plus freshly computed totals.
type CartView struct {
	Lines  []checkout.Line `json:"lines"`
	Totals checkout.Totals `json:"totals"`
}

// AddCartItemRequest identifies the product to add one unit of.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

// CheckoutResponse carries the committed sale and its on-screen receipt.
type CheckoutResponse struct {
	Sale    ledger.Sale      `json:"sale"`
	Receipt checkout.Receipt `json:"receipt"`
}

// ViewCart returns the session cart with its current totals.
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var view CartView
	_ = session.WithCart(func(cart *checkout.Cart) error {
		lines := cart.Lines()
		view = CartView{Lines: lines, Totals: checkout.CalculateTotals(lines)}
		return nil
	})
	web.RespondJSON(w, mLogger, http.StatusOK, view)
}

// AddCartItem puts one unit of a product in the session cart. Out-of-stock
// and over-stock additions are rejected with 409 and leave the cart as is.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondValidationError(w, r, err)
		return
	}
	productID := uuid.MustParse(req.ProductID)

	err := session.WithCart(func(cart *checkout.Cart) error {
		return h.coordinator.AddToCart(r.Context(), cart, productID)
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", productID))
		case errors.Is(err, checkout.ErrOutOfStock):
			mLogger.WarnContext(r.Context(), "Product out of stock", "product_id", productID)
			web.RespondError(w, mLogger, http.StatusConflict, "Sorry, this item is out of stock")
		case errors.Is(err, checkout.ErrInsufficientStock):
			mLogger.WarnContext(r.Context(), "Cart already holds all available units", "product_id", productID)
			web.RespondError(w, mLogger, http.StatusConflict, "Not enough stock available")
		default:
			mLogger.ErrorContext(r.Context(), "Error adding product to cart", "product_id", productID, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add product to cart")
		}
		return
	}
	h.ViewCart(w, r)
}

// RemoveCartItem removes the whole line for a product from the session cart.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	productID, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	_ = session.WithCart(func(cart *checkout.Cart) error {
		cart.RemoveItem(productID)
		return nil
	})
	h.ViewCart(w, r)
}

// ClearCart empties the session cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	_ = session.WithCart(func(cart *checkout.Cart) error {
		cart.Clear()
		return nil
	})
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}

// Checkout commits the session cart as a sale. An empty cart is a no-op
// answered with 204.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var sale *ledger.Sale
	err := session.WithCart(func(cart *checkout.Cart) error {
		var checkoutErr error
		sale, checkoutErr = h.coordinator.Checkout(r.Context(), cart, session.Employee)
		return checkoutErr
	})
	if err != nil {
		if errors.Is(err, checkout.ErrInsufficientStock) || errors.Is(err, catalog.ErrInsufficientStock) {
			mLogger.WarnContext(r.Context(), "Checkout rejected, insufficient stock", "error", err)
			web.RespondError(w, mLogger, http.StatusConflict, "Stock changed; the sale was not committed")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error committing checkout", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to complete the sale")
		return
	}
	if sale == nil {
		web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
		return
	}

	web.RespondJSON(w, mLogger, http.StatusCreated, CheckoutResponse{
		Sale:    *sale,
		Receipt: h.presenter.Present(*sale),
	})
}

// Receipt re-renders the receipt for a committed sale. With ?format=print the
// fixed-width thermal layout is returned as plain text.
func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	saleID := chi.URLParam(r, "saleId")

	sale, err := h.sales.FindByID(r.Context(), saleID)
	if err != nil {
		if errors.Is(err, ledger.ErrSaleNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Sale %s not found", saleID))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving sale", "sale_id", saleID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to retrieve sale")
		return
	}

	if r.URL.Query().Get("format") == "print" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(h.presenter.RenderPrint(*sale)))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.presenter.Present(*sale))
}
