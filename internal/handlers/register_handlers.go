package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	portssvc "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/services"
	"github.com/gustav-stromberg-tln/fxpayment/internal/middleware"
	"github.com/gustav-stromberg-tln/fxpayment/pkg/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Per-IP rate limit on the write path only; reads stay unthrottled.
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Default().Warn("Invalid RATE_LIMIT value, using default",
			slog.String("value", cfg.RateLimit),
			slog.String("default", config.DefaultRateLimit),
			slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted(config.DefaultRateLimit)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	RegisterPaymentRoutes(v1, services.Payment, services.Currency, middleware.RateLimit(ipLimiter))
	registerCurrencyRoutes(v1, services.Currency)
}
