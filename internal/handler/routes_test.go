package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/handler"
)

func assertRoute(t *testing.T, routes []*echo.Route, method, path string) {
	t.Helper()
	for _, r := range routes {
		if r.Method == method && r.Path == path {
			return
		}
	}
	t.Fatalf("route not found: %s %s", method, path)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	e := newTestEcho()
	g := e.Group("")

	handler.NewProxyHandler(nil).RegisterRoutes(g)
	handler.NewSiteHandler(nil).RegisterRoutes(g)
	handler.NewAIHandler(nil).RegisterRoutes(g)
	handler.NewGamesHandler(nil).RegisterRoutes(g)
	handler.NewFeedbackHandler(nil).RegisterRoutes(g)
	handler.NewSyncHandler(nil).RegisterRoutes(g)

	adminHandler := handler.NewAdminHandler(nil, nil, nil)
	adminHandler.RegisterPublicRoutes(g)
	adminHandler.RegisterProtectedRoutes(g)

	routes := e.Routes()

	assertRoute(t, routes, http.MethodGet, "/proxy")
	assertRoute(t, routes, http.MethodGet, "/proxy/sites")
	assertRoute(t, routes, http.MethodGet, "/proxy/sites/:id")
	assertRoute(t, routes, http.MethodGet, "/proxy/sites/:id/status")

	assertRoute(t, routes, http.MethodPost, "/ai/chat")
	assertRoute(t, routes, http.MethodPost, "/ai/games/search")
	assertRoute(t, routes, http.MethodPost, "/ai/tags")

	assertRoute(t, routes, http.MethodGet, "/games/list")
	assertRoute(t, routes, http.MethodGet, "/games/popup")
	assertRoute(t, routes, http.MethodGet, "/games/image/*")
	assertRoute(t, routes, http.MethodGet, "/games/search")
	assertRoute(t, routes, http.MethodGet, "/games/categories")
	assertRoute(t, routes, http.MethodGet, "/games/category/:name")
	assertRoute(t, routes, http.MethodGet, "/games/recent")
	assertRoute(t, routes, http.MethodGet, "/games/slug/:slug")

	assertRoute(t, routes, http.MethodGet, "/feedback/ideas")
	assertRoute(t, routes, http.MethodPost, "/feedback/ideas")
	assertRoute(t, routes, http.MethodPost, "/feedback/ideas/:id/vote")

	assertRoute(t, routes, http.MethodGet, "/users/:uid/sync")
	assertRoute(t, routes, http.MethodPut, "/users/:uid/sync")
	assertRoute(t, routes, http.MethodGet, "/users/:uid/data/:dataset")
	assertRoute(t, routes, http.MethodPut, "/users/:uid/data/:dataset")

	assertRoute(t, routes, http.MethodPost, "/admin/login")
	assertRoute(t, routes, http.MethodPost, "/admin/logout")
	assertRoute(t, routes, http.MethodGet, "/admin/proxy/usage")
	assertRoute(t, routes, http.MethodGet, "/admin/feedback")
	assertRoute(t, routes, http.MethodPatch, "/admin/feedback/:id/status")
}
