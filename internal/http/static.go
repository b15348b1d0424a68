package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"kitten/backend/pkg/logger"
)

// reservedPrefixes never fall back to the SPA index.
var reservedPrefixes = []string{"/api", "/swagger", "/metrics", "/healthz"}

// registerStatic serves the built frontend from dir. Unknown paths get
// index.html so client-side routes resolve.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "action", "register", "resource", "static", "result", "skipped", "path", indexPath)
		return
	}

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReservedPath(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err == nil && !fileInfo.IsDir() {
			if strings.HasPrefix(cleanPath, "_next/static/") {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		return c.File(indexPath)
	})
}

func isReservedPath(p string) bool {
	for _, prefix := range reservedPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
