package rest

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/heartmarshall/customtrack-backend/internal/auth"
	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/transport/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type tokenValidator interface {
	ValidateActorToken(token string) (auth.Identity, error)
}

// Handlers groups the REST handlers mounted under /api/v1.
type Handlers struct {
	Health         *HealthHandler
	Customizations *CustomizationHandler
	History        *HistoryHandler
	Notifications  *NotificationHandler
	Subscriptions  *SubscriptionHandler
}

// RouterConfig holds everything NewRouter needs besides the handlers.
type RouterConfig struct {
	Logger *slog.Logger
	CORS   config.CORSConfig
	// Tokens validates bearer tokens. Nil trusts the X-Actor-Id header.
	Tokens tokenValidator
	// Limiter throttles writes per client IP. Nil or WritesPerMinute == 0
	// disables throttling.
	Limiter         *middleware.RateLimiter
	WritesPerMinute int
	// Metrics is served on /metrics when set.
	Metrics prometheus.Gatherer
}

// NewRouter builds the gin engine with the middleware stack and all routes.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)

	h.Health.RegisterRoutes(router)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Metrics, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Actor(cfg.Tokens))
	if cfg.Limiter != nil && cfg.WritesPerMinute > 0 {
		api.Use(cfg.Limiter.LimitWrites(cfg.WritesPerMinute))
	}

	h.Customizations.RegisterRoutes(api)
	h.History.RegisterRoutes(api)
	h.Subscriptions.RegisterProvisioning(api)

	personal := api.Group("", middleware.RequireActor())
	h.Notifications.RegisterRoutes(personal)
	h.Subscriptions.RegisterRoutes(personal)

	return router
}
