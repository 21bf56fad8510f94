// Package rest provides the HTTP handlers for the point-of-sale API.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/keymaster/pos/internal/backup"
	"github.com/keymaster/pos/internal/catalog"
	"github.com/keymaster/pos/internal/checkout"
	"github.com/keymaster/pos/internal/insight"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/internal/staff"
	"github.com/keymaster/pos/pkg/web"
)

type Handler struct {
	products    catalog.ProductService
	employees   staff.EmployeeService
	sales       ledger.SaleService
	coordinator *checkout.Coordinator
	presenter   *checkout.Presenter
	sessions    *checkout.SessionManager
	backups     *backup.Service
	insights    *insight.Service
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewHandler creates a new Handler with the provided services.
func NewHandler(
	products catalog.ProductService,
	employees staff.EmployeeService,
	sales ledger.SaleService,
	coordinator *checkout.Coordinator,
	presenter *checkout.Presenter,
	sessions *checkout.SessionManager,
	backups *backup.Service,
	insights *insight.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		products:    products,
		employees:   employees,
		sales:       sales,
		coordinator: coordinator,
		presenter:   presenter,
		sessions:    sessions,
		backups:     backups,
		insights:    insights,
		validate:    validator.New(),
		logger:      logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the point-of-sale API.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(web.SessionMiddleware)

		r.Post("/api/v1/auth/logout", h.Logout)

		r.Route("/api/v1/products", func(r chi.Router) {
			r.Get("/", h.FindAllProducts)
			r.Post("/", h.CreateProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.FindProductByID)
				r.Put("/", h.UpdateProduct)
				r.Delete("/", h.DeleteProduct)
			})
		})

		r.Route("/api/v1/employees", func(r chi.Router) {
			r.Get("/", h.FindAllEmployees)
			r.Post("/", h.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.FindEmployeeByID)
				r.Put("/", h.UpdateEmployee)
				r.Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", h.ViewCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Delete("/items/{id}", h.RemoveCartItem)
		})
		r.Post("/api/v1/checkout", h.Checkout)

		r.Get("/api/v1/sales", h.SalesHistory)
		r.Get("/api/v1/sales/{saleId}/receipt", h.Receipt)
		r.Get("/api/v1/reports/summary", h.ReportSummary)

		r.Get("/api/v1/backup/export", h.ExportBackup)
		r.Post("/api/v1/backup/import", h.ImportBackup)
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.loggerWithReqID(r), http.StatusOK, map[string]string{"status": "ok"})
}

// loggerWithReqID returns a logger carrying the request id.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	return h.logger.With("request_id", middleware.GetReqID(r.Context()))
}

// session resolves the request's session token to an active cashier session.
// Responds 401 and returns false when the session is missing or unknown.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*checkout.Session, bool) {
	mLogger := h.loggerWithReqID(r)
	token, ok := web.GetSession(r.Context())
	if !ok {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Missing session token")
		return nil, false
	}
	session, err := h.sessions.Get(token)
	if err != nil {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Session expired or unknown")
		return nil, false
	}
	return session, true
}

// respondValidationError maps validator errors to a field-keyed 400 payload.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, err error) bool {
	mLogger := h.loggerWithReqID(r)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return true
	}
	errorResponse := make(map[string]string)
	for _, fieldErr := range validationErrors {
		errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
	}
	mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
	web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
	return true
}
