// internal/wire/wire.go
package wire

import (
	"net/http"

	"teide-booking/internal/adaptor"
	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/events"
	"teide-booking/internal/i18n"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/middleware"
	"teide-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies are the long lived resources built in main.
type Dependencies struct {
	Repo       *repository.Repository
	Catalog    *catalog.Store
	Publisher  events.Publisher
	Translator i18n.Translator
	DB         adaptor.Pinger
	// Redis may be nil; rate limiting is then skipped.
	Redis *redis.Client
}

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(deps Dependencies, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Catalog, deps.Publisher, deps.Translator, config, logger)
	handler := adaptor.NewHandler(service, deps.DB, config, logger)

	router := setupRouter(handler, service, deps, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	deps Dependencies,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	if config.App.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.App.CORSOrigins))

	limit := func(name string) func(next http.Handler) http.Handler {
		return middleware.RateLimit(deps.Redis, config.RateLimit, name, logger)
	}

	// Apply routes
	wireService(r, handler.Service, handler.AdminService, service.Auth, logger)
	wireBooking(r, handler.Booking, handler.Payment, service.Auth, limit, logger)
	wireAuth(r, handler.Auth, limit)

	r.Get("/health", handler.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
