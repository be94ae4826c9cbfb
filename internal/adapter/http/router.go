package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caixaflow/caixaflow/internal/adapter/http/handler"
	"github.com/caixaflow/caixaflow/internal/adapter/http/middleware"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler        *handler.AccountHandler
	CategoryHandler       *handler.CategoryHandler
	MovementHandler       *handler.MovementHandler
	TransferHandler       *handler.TransferHandler
	ReconciliationHandler *handler.ReconciliationHandler
	CashFlowHandler       *handler.CashFlowHandler
	ClosingHandler        *handler.ClosingHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
	RequestLogger         *middleware.RequestLogger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	if cfg.RequestLogger != nil {
		r.Use(cfg.RequestLogger.Wrap)
	}

	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Put("/{id}", cfg.AccountHandler.Update)
			r.Delete("/{id}", cfg.AccountHandler.Delete)
			r.Put("/{id}/initial-balance", cfg.AccountHandler.SetInitialBalance)
			r.Get("/{id}/balance", cfg.AccountHandler.Balance)
		})

		// Chart of accounts
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Get("/code/{code}", cfg.CategoryHandler.GetByCode)
			r.Put("/{id}", cfg.CategoryHandler.Update)
			r.Put("/{id}/active", cfg.CategoryHandler.SetActive)
			r.Delete("/{id}", cfg.CategoryHandler.Delete)
		})

		// Ledger movements
		r.Route("/movements", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Create)
			r.Get("/", cfg.MovementHandler.List)
			r.Get("/{id}", cfg.MovementHandler.Get)
			r.Put("/{id}", cfg.MovementHandler.Update)
			r.Delete("/{id}", cfg.MovementHandler.Delete)
		})

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
			r.Get("/{id}", cfg.TransferHandler.Get)
			r.Delete("/{id}", cfg.TransferHandler.Delete)
		})

		// Reconciliation
		r.Route("/reconciliations", func(r chi.Router) {
			r.Post("/", cfg.ReconciliationHandler.Record)
			r.Get("/", cfg.ReconciliationHandler.History)
			r.Get("/day/{date}", cfg.ReconciliationHandler.DaySummary)
		})

		// Cash-flow reporting
		r.Route("/cashflow", func(r chi.Router) {
			r.Get("/statement", cfg.CashFlowHandler.Statement)
			r.Get("/summary", cfg.CashFlowHandler.Summary)
		})

		// Period lock
		r.Route("/closing", func(r chi.Router) {
			r.Get("/", cfg.ClosingHandler.Status)
			r.Post("/", cfg.ClosingHandler.Close)
			r.Delete("/", cfg.ClosingHandler.Reopen)
		})
	})

	return r
}
