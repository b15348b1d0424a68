package http

import (
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kitten/backend/internal/handler"
	"kitten/backend/internal/metrics"
	"kitten/backend/internal/service"
	"kitten/backend/pkg/logger"
)

// AuthCookieName is the admin session cookie read by JWTAuthMiddleware.
const AuthCookieName = handler.AuthCookieName

// JWTAuthMiddleware admits requests carrying a valid admin token, either as a
// Bearer header or in the session cookie.
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				if cookie, err := c.Cookie(AuthCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return c.JSON(nethttp.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			valid, err := authService.ValidateToken(token)
			if err != nil || !valid {
				logger.Debug("admin token rejected", "module", "http", "action", "authenticate", "resource", "admin", "result", "failed", "error", err)
				return c.JSON(nethttp.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequestIDMiddleware tags every request with a UUID unless the caller sent
// an X-Request-ID.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			switch {
			case v.Status >= nethttp.StatusInternalServerError:
				if v.Error != nil {
					args = append(args, "error", v.Error)
				}
				logger.Error("http request", append(args, "result", "failed")...)
			case v.Status >= nethttp.StatusBadRequest:
				logger.Warn("http request", append(args, "result", "rejected")...)
			default:
				logger.Debug("http request", append(args, "result", "ok")...)
			}
			return nil
		},
	})
}

// MetricsMiddleware counts responses by method and status.
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else if !c.Response().Committed {
					status = nethttp.StatusInternalServerError
				}
			}
			m.HTTPRequest(c.Request().Method, status)
			return err
		}
	}
}
