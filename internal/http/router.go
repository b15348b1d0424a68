package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "kitten/backend/docs"
	"kitten/backend/internal/handler"
	"kitten/backend/internal/metrics"
	"kitten/backend/internal/service"
)

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Proxy    *handler.ProxyHandler
	Sites    *handler.SiteHandler
	AI       *handler.AIHandler
	Games    *handler.GamesHandler
	Feedback *handler.FeedbackHandler
	Sync     *handler.SyncHandler
	Admin    *handler.AdminHandler
}

func NewRouter(
	h Handlers,
	authService service.AuthService,
	m *metrics.Metrics,
	staticDir string,
	enableSwagger bool,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())
	e.Use(MetricsMiddleware(m))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	if enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")
	h.Proxy.RegisterRoutes(api)
	h.Sites.RegisterRoutes(api)
	h.AI.RegisterRoutes(api)
	h.Games.RegisterRoutes(api)
	h.Feedback.RegisterRoutes(api)
	h.Sync.RegisterRoutes(api)
	h.Admin.RegisterPublicRoutes(api)

	admin := api.Group("", JWTAuthMiddleware(authService))
	h.Admin.RegisterProtectedRoutes(admin)

	registerStatic(e, staticDir)

	return e
}
