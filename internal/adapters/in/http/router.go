package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"coffeeshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// RateLimit is the per-client request rate for /api routes; zero disables it.
	RateLimit float64
	// Kitchen serves GET /ws/kitchen when set.
	Kitchen echo.HandlerFunc
	Logger  *slog.Logger
}

// NewRouter builds the echo instance with health, docs, API and kitchen
// routes. API requests are validated against the embedded OpenAPI document.
func NewRouter(server servers.ServerInterface, opts RouterOptions) (*echo.Echo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	registerDocs(e)

	api := e.Group("")
	if opts.RateLimit > 0 {
		api.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}
	api.Use(validator)
	servers.RegisterHandlers(api, server)

	if opts.Kitchen != nil {
		e.GET("/ws/kitchen", opts.Kitchen)
	}
	return e, nil
}
