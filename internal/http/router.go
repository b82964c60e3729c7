package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/tiendafacil/pos-backend/internal/auth"
	"github.com/tiendafacil/pos-backend/internal/http/handlers"
	rl "github.com/tiendafacil/pos-backend/internal/http/rate_limiter"
)

// NewRouter wires the full route table. Everything under /api requires a
// bearer token except login and the health check. Requests without an Origin
// header bypass CORS entirely (server-to-server traffic).
func NewRouter(h *handlers.Handler, tokens *auth.TokenService, allowedOrigins []string, limiter *rl.Limiter) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := AuthMiddleware(tokens)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		r.Route("/auth", func(r chi.Router) {
			r.With(LoginRateLimit(limiter)).Post("/login", h.LoginHandler)
			r.With(requireAuth).Get("/me", h.MeHandler)
		})

		r.Route("/productos", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", h.GetProductsHandler)
			r.Post("/", h.CreateProductHandler)
			r.Get("/{id}", h.GetProductByIDHandler)
			r.Patch("/{id}", h.PatchProductHandler)
			r.Put("/{id}", h.ReplaceProductHandler)
			r.Delete("/{id}", h.DeleteProductHandler)
		})

		r.Route("/ventas", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.CreateSaleHandler)
			r.Get("/diarias", h.DailySalesHandler)
		})

		r.Route("/reportes", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/ventas", h.SalesReportHandler)
			r.Get("/mas-vendidos", h.TopProductsHandler)
			r.Get("/inventario", h.InventoryReportHandler)
		})
	})

	return r
}
