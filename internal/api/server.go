// Package api wires the chi router: middleware stack, documentation,
// metrics and the versioned record endpoints.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/pokedex-data/internal/api/handler"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/pokedex"
)

// Deps are the router's collaborators. DB and Metrics may be nil.
type Deps struct {
	Service *pokedex.Service
	Cache   *cache.Cache
	DB      handler.Database
	Metrics *metrics.Collector
	Config  *config.Config
	Logger  *slog.Logger
}

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(deps Deps) *chi.Mux {
	cfg := deps.Config
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	if deps.Metrics != nil {
		r.Use(MetricsMiddleware(deps.Metrics))
	}
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Handler dependencies ---
	h := handler.New(deps.Service, deps.Cache, deps.DB, cfg, deps.Logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Prometheus exposition
	if deps.Metrics != nil {
		r.Method("GET", "/metrics", deps.Metrics.Handler())
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Pokémon
		r.Get("/pokemon", h.GetPokemonBatch)
		r.Get("/pokemon/{id}", h.GetPokemon)

		// Species
		r.Get("/species/{id}", h.GetSpecies)
		r.Get("/species/{id}/relatives", h.GetRelatives)

		// Evolution
		r.Get("/evolution/{id}", h.GetEvolutionChain)

		// Search and vocabulary
		r.Get("/search", h.Search)
		r.Get("/types", h.ListTypes)
	})

	return r
}
