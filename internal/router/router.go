package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ulbra-election/voter/internal/middleware/metrics"
	"github.com/ulbra-election/voter/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(metrics.Middleware)

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// session endpoints live at the root, matching the gateway contract
	r.Post("/login", h.Login)
	r.Get("/check/{token}", h.CheckToken)
	r.Post("/logout", h.Logout)

	r.Route("/v1/voter", func(r chi.Router) {
		r.Post("/", h.CreateVoter)
		r.Get("/", h.GetVoters)
		r.Get("/{voterId}", h.GetVoter)
		r.Put("/{voterId}", h.UpdateVoter)
		r.Delete("/{voterId}", h.DeleteVoter)
	})

	return r
}
