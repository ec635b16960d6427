package http

import (
	"log/slog"
	"net/http"

	"bakery/docs"
	"bakery/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
)

// RouterConfig configures the middleware stack.
type RouterConfig struct {
	Credentials Credentials
	// RateLimitPerSecond disables rate limiting when not positive.
	RateLimitPerSecond float64
	Gatherer           prometheus.Gatherer
}

// NewRouter builds the echo instance serving the API, its documentation, health and metrics.
func NewRouter(cfg RouterConfig, server *Server, metrics *Metrics, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := docs.Spec()
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(metrics.Middleware())
	if cfg.RateLimitPerSecond > 0 {
		e.Use(rateLimiter(cfg.RateLimitPerSecond))
	}
	e.Use(basicAuth(cfg.Credentials))
	e.Use(validator)

	e.GET(healthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
