// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"realty-backend/internal/adaptor"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/metrics"
	"realty-backend/pkg/middleware"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Metrics *metrics.Metrics
}

// guards bundles the auth middleware shared by every route file.
type guards struct {
	authenticate func(http.Handler) http.Handler
	optional     func(http.Handler) http.Handler
	identity     func(http.Handler) http.Handler
	staff        func(http.Handler) http.Handler
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, deps usecase.Deps, logger *zap.Logger) *App {
	if deps.Tokens == nil {
		deps.Tokens = token.NewManager(config.JWT)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	// Initialize services dan handlers
	service := usecase.NewService(repo, config, deps, logger)
	handler := adaptor.NewHandler(service, logger)

	g := guards{
		authenticate: middleware.Authenticate(deps.Tokens, logger),
		optional:     middleware.OptionalAuth(deps.Tokens, service.Auth, logger),
		identity:     middleware.RequireIdentity(service.Auth, logger),
		staff:        middleware.RequireStaff(service.Auth, logger),
	}

	router := setupRouter(handler, repo, config, deps.Metrics, g, logger)

	return &App{
		Router:  router,
		Service: service,
		Metrics: deps.Metrics,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	m *metrics.Metrics,
	g guards,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	r.Use(m.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireAdmin(r, handler.Admin, g)
	wireCatalog(r, handler, g)
	wireContent(r, handler, g)

	r.Get("/health", healthCheck(repo, logger))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

// healthCheck pings the database with a short deadline.
func healthCheck(repo *repository.Repository, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo.DB == nil {
			utils.ResponseSuccess(w, "OK", map[string]string{"database": "skipped"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.DB.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "Database unavailable")
			return
		}
		utils.ResponseSuccess(w, "OK", map[string]string{"database": "up"})
	}
}
