package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/hostledger/hostledger/internal/api"
	"github.com/hostledger/hostledger/internal/auth"
	"github.com/hostledger/hostledger/internal/config"
	"github.com/hostledger/hostledger/internal/http/ratelimit"
	"github.com/hostledger/hostledger/internal/metrics"
	"github.com/hostledger/hostledger/internal/store"
)

// NewRouter wires the health probes, metrics endpoint and API routes.
func NewRouter(cfg *config.Config, st *store.Store, authService *auth.Service, handler *api.Handler) http.Handler {
	r := chi.NewRouter()

	// Import endpoints hit external feed hosts, so they get a tighter budget
	// than the read-mostly API.
	importRateLimiter := ratelimit.NewIPRateLimiter(rate.Limit(1), 5, 5*time.Minute, cfg.TrustedProxies)
	apiRateLimiter := ratelimit.NewIPRateLimiter(rate.Limit(20), 50, 5*time.Minute, cfg.TrustedProxies)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := st.HealthCheck(ctx); err != nil {
			http.Error(w, "unready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.PrometheusEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			metrics.Handler().ServeHTTP(w, r)
		})
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(authService.RequireToken)
		r.Use(apiRateLimiter.Middleware())

		r.With(importRateLimiter.Middleware()).
			Post("/properties/{id}/import", handler.ImportFeed)

		r.Get("/participation", handler.Participation)
		r.Get("/participation/categories", handler.Categories)
		r.Get("/briefing", handler.Briefing)
		r.Get("/compliance", handler.Compliance)
		r.Get("/audit.pdf", handler.AuditPDF)
		r.Get("/metrics/portfolio", handler.PortfolioMetrics)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handler.ListProperties)
			r.Post("/", handler.CreateProperty)
			r.Get("/{id}", handler.GetProperty)
			r.Delete("/{id}", handler.DeleteProperty)
			r.Get("/{id}/metrics", handler.PropertyMetrics)
			r.Get("/{id}/gaps", handler.Gaps)
			r.Get("/{id}/proforma", handler.Proforma)
			r.Get("/{id}/schedule-e", handler.ScheduleE)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", handler.ListBookings)
			r.Post("/", handler.CreateBooking)
			r.Delete("/{id}", handler.DeleteBooking)
		})

		r.Route("/time-entries", func(r chi.Router) {
			r.Get("/", handler.ListTimeEntries)
			r.Post("/", handler.CreateTimeEntry)
			r.Put("/{id}", handler.UpdateTimeEntry)
			r.Delete("/{id}", handler.DeleteTimeEntry)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", handler.ListExpenses)
			r.Post("/", handler.CreateExpense)
			r.Delete("/{id}", handler.DeleteExpense)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", handler.ListContacts)
			r.Post("/", handler.CreateContact)
			r.Delete("/{id}", handler.DeleteContact)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", handler.ListDocuments)
			r.Post("/", handler.CreateDocument)
			r.Delete("/{id}", handler.DeleteDocument)
		})

		r.Route("/maintenance", func(r chi.Router) {
			r.Get("/", handler.ListMaintenance)
			r.Post("/", handler.CreateMaintenance)
			r.Delete("/{id}", handler.DeleteMaintenance)
		})
	})

	return r
}
