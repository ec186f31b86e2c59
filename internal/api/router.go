package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/vikasavnish/helloservice/internal/config"
	"github.com/vikasavnish/helloservice/internal/middleware"
)

// SetupRouter configures all routes and returns the router
func SetupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", RootHandler).Methods("GET")
	router.HandleFunc("/health", HealthHandler).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	return router
}

// NewHandler wraps router with request logging and CORS as configured.
func NewHandler(cfg *config.Config, router *mux.Router) http.Handler {
	var handler http.Handler = router

	// mux.Router.Use skips unmatched routes, so logging wraps the whole router
	if cfg.Log.RequestLogging {
		handler = middleware.RequestLogger(handler)
	}

	return WithCORS(cfg.CORS, handler)
}

// WithCORS applies the CORS policy for the read-only endpoints.
func WithCORS(cfg config.CORSConfig, next http.Handler) http.Handler {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return corsMiddleware.Handler(next)
}
