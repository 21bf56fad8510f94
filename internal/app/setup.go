// Package app contains the application setup for the KeyMaster POS service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	bolt "github.com/boltdb/bolt"
	"github.com/go-chi/chi/v5"
	"github.com/keymaster/pos/internal/backup"
	"github.com/keymaster/pos/internal/catalog"
	"github.com/keymaster/pos/internal/checkout"
	"github.com/keymaster/pos/internal/config"
	"github.com/keymaster/pos/internal/insight"
	"github.com/keymaster/pos/internal/ledger"
	"github.com/keymaster/pos/internal/staff"
	"github.com/keymaster/pos/internal/transport/rest"
	"github.com/keymaster/pos/pkg/server"
)

// Default credentials seeded when the staff collection is empty, so a fresh
// install can be logged into at all.
const (
	defaultAdminName     = "System Administrator"
	defaultAdminEmail    = "admin@key.com"
	defaultAdminPassword = "123"
)

type Dependencies struct {
	Products    catalog.ProductService
	Employees   staff.EmployeeService
	Sales       ledger.SaleService
	Coordinator *checkout.Coordinator
	Presenter   *checkout.Presenter
	Sessions    *checkout.SessionManager
	Backups     *backup.Service
	Insights    *insight.Service
	Logger      *slog.Logger
}

// SetupDependencies wires every service over the shared embedded database.
func SetupDependencies(ctx context.Context, db *bolt.DB, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	productStore, err := catalog.NewBoltStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to set up product store: %w", err)
	}
	employeeStore, err := staff.NewBoltStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to set up employee store: %w", err)
	}
	saleStore, err := ledger.NewBoltStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to set up sale store: %w", err)
	}

	employeeService := staff.NewService(employeeStore)
	if err := seedAdmin(ctx, employeeStore, employeeService, logger); err != nil {
		return nil, err
	}

	return &Dependencies{
		Products:    catalog.NewService(productStore),
		Employees:   employeeService,
		Sales:       ledger.NewService(saleStore),
		Coordinator: checkout.NewCoordinator(productStore, saleStore, logger),
		Presenter: checkout.NewPresenter(checkout.ShopIdentity{
			Name:      cfg.Shop.Name,
			Tagline:   cfg.Shop.Tagline,
			VATNumber: cfg.Shop.VATNumber,
			Currency:  cfg.Shop.Currency,
		}),
		Sessions: checkout.NewSessionManager(),
		Backups:  backup.NewService(productStore, employeeStore, saleStore, logger),
		Insights: insight.NewService(cfg.Insight.URL, cfg.Insight.Timeout, logger),
		Logger:   logger,
	}, nil
}

// SetupHttpHandler initializes the router and routes for the POS service.
// Used by handler tests to exercise the full HTTP surface.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the POS service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(
		deps.Products,
		deps.Employees,
		deps.Sales,
		deps.Coordinator,
		deps.Presenter,
		deps.Sessions,
		deps.Backups,
		deps.Insights,
		deps.Logger,
	)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the POS service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}

// seedAdmin creates the default admin account on a fresh database.
func seedAdmin(ctx context.Context, store staff.EmployeeStore, service staff.EmployeeService, logger *slog.Logger) error {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check staff records: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = service.Create(ctx, staff.EmployeeCreateDto{
		Name:     defaultAdminName,
		Email:    defaultAdminEmail,
		Password: defaultAdminPassword,
		Role:     string(staff.RoleAdmin),
	})
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	logger.Warn("Seeded default admin account; change its password",
		"email", defaultAdminEmail)
	return nil
}
