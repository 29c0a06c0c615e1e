package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rogerio-castellano/consumables-tracker/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	// The dashboard frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/login", handlers.LoginHandler)
	r.Get("/healthz", handlers.HealthHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/reminders", handlers.GetRemindersHandler)
	r.Get("/dashboard", handlers.GetDashboardHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware)
		pr.Post("/products", handlers.CreateProductHandler)
		pr.Patch("/products/{id}/quantity", handlers.AdjustQuantityHandler)
		pr.Delete("/products/{id}", handlers.DeleteProductHandler)
	})

	return r
}
