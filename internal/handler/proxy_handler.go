package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/service"
	"kitten/backend/pkg/logger"
)

const headerRateLimitRemaining = "X-Rate-Limit-Remaining"

type ProxyHandler struct {
	service service.ProxyService
}

type proxyErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Host    string `json:"host,omitempty"`
	Status  int    `json:"status,omitempty"`
}

func NewProxyHandler(service service.ProxyService) *ProxyHandler {
	return &ProxyHandler{service: service}
}

func (h *ProxyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/proxy", h.Proxy)
}

// Proxy streams an allowlisted upstream page back to the caller.
//
//	@Summary	Fetch an allowlisted page through the proxy
//	@Tags		proxy
//	@Param		url	query	string	true	"Target URL"
//	@Param		uid	query	string	true	"Caller identity"
//	@Success	200	"Upstream body"
//	@Failure	400	{object}	proxyErrorResponse
//	@Failure	401	{object}	proxyErrorResponse
//	@Failure	403	{object}	proxyErrorResponse
//	@Failure	429	{object}	proxyErrorResponse
//	@Failure	502	{object}	proxyErrorResponse
//	@Router		/proxy [get]
func (h *ProxyHandler) Proxy(c echo.Context) error {
	req := c.Request()
	resp, err := h.service.Fetch(req.Context(), service.ProxyRequest{
		TargetURL:      c.QueryParam("url"),
		Identity:       c.QueryParam("uid"),
		Accept:         req.Header.Get("Accept"),
		AcceptLanguage: req.Header.Get("Accept-Language"),
	})
	if err != nil {
		return writeProxyError(c, err)
	}
	defer resp.Body.Close()

	header := c.Response().Header()
	for k, vs := range resp.Header {
		header[k] = vs
	}
	header.Set(headerRateLimitRemaining, strconv.Itoa(resp.Remaining))
	c.Response().WriteHeader(resp.StatusCode)

	if _, err := io.Copy(c.Response(), resp.Body); err != nil {
		// Headers are gone; the client sees a truncated body.
		logger.Debug("proxy stream interrupted", "module", "handler", "action", "stream", "resource", "proxy", "result", "failed", "host", resp.Host, "error", err)
	}
	return nil
}

func writeProxyError(c echo.Context, err error) error {
	var pe *service.ProxyError
	errors.As(err, &pe)
	host, status := "", 0
	if pe != nil {
		host, status = pe.Host, pe.StatusCode
	}

	switch {
	case errors.Is(err, service.ErrMissingIdentity):
		return c.JSON(http.StatusUnauthorized, proxyErrorResponse{Error: "Auth required", Message: "Login required to use proxy"})
	case errors.Is(err, service.ErrMissingURL):
		return c.JSON(http.StatusBadRequest, proxyErrorResponse{Error: "Missing url"})
	case errors.Is(err, service.ErrInvalidURL):
		return c.JSON(http.StatusBadRequest, proxyErrorResponse{Error: "Invalid url"})
	case errors.Is(err, service.ErrInvalidProtocol):
		return c.JSON(http.StatusBadRequest, proxyErrorResponse{Error: "Only http/https"})
	case errors.Is(err, service.ErrHostNotAllowed):
		return c.JSON(http.StatusForbidden, proxyErrorResponse{Error: "Host not allowed", Host: host})
	case errors.Is(err, service.ErrQuotaExceeded):
		c.Response().Header().Set(headerRateLimitRemaining, "0")
		return c.JSON(http.StatusTooManyRequests, proxyErrorResponse{Error: "Rate limit exceeded", Message: "25 requests per day per account"})
	case errors.Is(err, service.ErrUpstreamStatus):
		return c.JSON(http.StatusBadGateway, proxyErrorResponse{Error: "Upstream error", Host: host, Status: status})
	case errors.Is(err, service.ErrRequestTimeout), errors.Is(err, service.ErrFetchFailed):
		message := err.Error()
		if pe != nil && pe.Err != nil {
			message = pe.Err.Error()
		}
		return c.JSON(http.StatusBadGateway, proxyErrorResponse{Error: "Upstream fetch failed", Host: host, Message: message})
	default:
		return writeServiceError(c, err)
	}
}
