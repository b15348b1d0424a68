package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/quota"
	"kitten/backend/internal/service"
)

// AuthCookieName is the cookie carrying the admin token for browser sessions.
const AuthCookieName = "kitten_admin_token"

type AdminHandler struct {
	auth     service.AuthService
	proxy    service.ProxyService
	feedback service.FeedbackService
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type proxyUsageResponse struct {
	Items []quota.Usage `json:"items"`
	Allow []string      `json:"allow"`
	Deny  []string      `json:"deny"`

	// UID and Remaining are set when the view is filtered with ?uid=.
	UID       string `json:"uid,omitempty"`
	Remaining *int   `json:"remaining,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func NewAdminHandler(auth service.AuthService, proxy service.ProxyService, feedback service.FeedbackService) *AdminHandler {
	return &AdminHandler{auth: auth, proxy: proxy, feedback: feedback}
}

func (h *AdminHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/admin/login", h.Login)
}

func (h *AdminHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/admin/logout", h.Logout)
	g.GET("/admin/proxy/usage", h.ProxyUsage)
	g.GET("/admin/feedback", h.ListFeedback)
	g.PATCH("/admin/feedback/:id/status", h.SetFeedbackStatus)
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	resp, err := h.auth.Login(c.Request().Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "password is required"})
		case errors.Is(err, service.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid password"})
		}
		return writeServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, loginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ProxyUsage(c echo.Context) error {
	policy := h.proxy.Policy()
	resp := proxyUsageResponse{
		Items: []quota.Usage{},
		Allow: nonNilStrings(policy.Allow),
		Deny:  nonNilStrings(policy.Deny),
	}

	uid := strings.TrimSpace(c.QueryParam("uid"))
	for _, u := range h.proxy.Usage() {
		if uid == "" || u.Identity == uid {
			resp.Items = append(resp.Items, u)
		}
	}
	if uid != "" {
		remaining := h.proxy.Remaining(uid)
		resp.UID = uid
		resp.Remaining = &remaining
	}
	return c.JSON(http.StatusOK, resp)
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// ListFeedback lists ideas of every status unless ?status narrows it.
func (h *AdminHandler) ListFeedback(c echo.Context) error {
	limit, ok := parseLimit(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	status := c.QueryParam("status")
	if status == "" {
		status = "all"
	}
	ideas, err := h.feedback.List(c.Request().Context(), status, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toIdeaResponses(ideas))
}

func (h *AdminHandler) SetFeedbackStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	idea, err := h.feedback.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toIdeaResponse(*idea))
}
