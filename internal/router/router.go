package router

import (
	"net/http"
	"time"

	"souled-store/internal/handler"
	"souled-store/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	frontendURL string,
	environment string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Welcome document
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "Welcome to The Souled Store API", "version": "1.0.0", ` +
			`"endpoints": {"products": "/api/products", "cart": "/api/cart", ` +
			`"orders": "/api/orders", "health": "/api/health"}}`))
	})

	// Health check endpoint
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "success", "message": "E-commerce backend API is running", ` +
			`"environment": "` + environment + `", ` +
			`"timestamp": "` + time.Now().UTC().Format(time.RFC3339) + `"}`))
	})

	// Catalogue routes. Literal segments (featured, categories, search)
	// take precedence over the {id} wildcard.
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/featured", productHandler.GetFeatured)
	mux.HandleFunc("GET /api/products/categories", productHandler.GetCategories)
	mux.HandleFunc("GET /api/products/search/{query}", productHandler.Search)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)

	// Cart routes
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart", cartHandler.Add)
	mux.HandleFunc("PUT /api/cart/{productId}", cartHandler.Update)
	mux.HandleFunc("DELETE /api/cart/{productId}", cartHandler.Remove)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)

	// Order routes
	mux.HandleFunc("POST /api/orders/checkout", orderHandler.Checkout)
	mux.HandleFunc("GET /api/orders", orderHandler.List)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var h http.Handler = mux
	h = middleware.Session(h)
	h = middleware.CORS(frontendURL)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
