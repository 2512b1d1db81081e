package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Bond-Portfolio-Manager/internal/api/middleware"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/config"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// Services bundles the services the HTTP API depends on.
type Services struct {
	System    *service.SystemService
	Bond      *service.BondService
	Interest  *service.InterestService
	Yield     *service.YieldService
	Portfolio *service.PortfolioService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, logger logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.NewLogger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/bond", func(r chi.Router) {
			bondHandler := handlers.NewBondHandler(services.Bond, services.Interest, services.Yield)
			r.Get("/", bondHandler.Bonds)
			r.Post("/", bondHandler.CreateBond)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateBondIDMiddleware)
				r.Get("/", bondHandler.GetBond)
				r.Put("/", bondHandler.UpdateBond)
				r.Delete("/", bondHandler.DeleteBond)
				r.Get("/payments", bondHandler.Payments)
				r.Get("/next-payment", bondHandler.NextPayment)
				r.Get("/yields", bondHandler.Yields)
			})
		})

		r.Route("/interest", func(r chi.Router) {
			interestHandler := handlers.NewInterestHandler(services.Interest)
			r.Get("/schedule", interestHandler.Schedule)
			r.Get("/monthly", interestHandler.Monthly)
			r.Get("/yearly", interestHandler.Yearly)
			r.Get("/calendar", interestHandler.Calendar)
		})

		r.Route("/yield", func(r chi.Router) {
			yieldHandler := handlers.NewYieldHandler(services.Yield)
			r.Get("/", yieldHandler.Averages)
			r.Get("/average", yieldHandler.Average)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(services.Portfolio)
			r.Get("/overview", portfolioHandler.Overview)
		})
	})

	return r
}
