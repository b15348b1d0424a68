package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/model"
	"kitten/backend/internal/service"
	"kitten/backend/internal/service/ai"
)

const missingKeyMessage = "OPENROUTER_API_KEY missing. Set it in the server environment to enable chat."

type AIHandler struct {
	service service.AIService
}

type chatRequest struct {
	Messages json.RawMessage `json:"messages"`
}

type chatErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Status int    `json:"status,omitempty"`
}

type gamesSearchRequest struct {
	Query      string   `json:"query"`
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories"`
}

type gamesSearchResponse struct {
	Items []model.GameSummary `json:"items"`
	Error string              `json:"error,omitempty"`
}

type tagsRequest struct {
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`
}

type tagsResponse struct {
	Tags  []string `json:"tags"`
	Error string   `json:"error,omitempty"`
}

func NewAIHandler(service service.AIService) *AIHandler {
	return &AIHandler{service: service}
}

func (h *AIHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai/chat", h.Chat)
	g.POST("/ai/games/search", h.SearchGames)
	g.POST("/ai/tags", h.Tags)
}

// Chat relays a conversation to the model chain and returns the provider
// payload as-is.
//
//	@Summary	Chat completion with model fallback
//	@Tags		ai
//	@Accept		json
//	@Produce	json
//	@Param		request	body		chatRequest	true	"Chat messages"
//	@Success	200		{object}	object		"Provider payload"
//	@Failure	400		{object}	errorResponse
//	@Failure	500		{object}	errorResponse	"Provider key missing"
//	@Failure	502		{object}	chatErrorResponse
//	@Router		/ai/chat [post]
func (h *AIHandler) Chat(c echo.Context) error {
	if !h.service.Configured() {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: missingKeyMessage})
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
	}
	raw := bytes.TrimSpace(req.Messages)
	if len(raw) == 0 || raw[0] != '[' {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "messages must be an array"})
	}
	var messages []ai.InboundMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "messages must be an array"})
	}

	payload, err := h.service.Chat(c.Request().Context(), messages)
	if err != nil {
		return writeChatError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

func writeChatError(c echo.Context, err error) error {
	if errors.Is(err, ai.ErrMissingAPIKey) {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: missingKeyMessage})
	}
	if !ai.IsGatewayFailure(err) {
		// Cancelled or throttled before any model answered.
		return c.JSON(http.StatusServiceUnavailable, chatErrorResponse{Error: "Chat request aborted", Detail: err.Error()})
	}
	status := ai.StatusCode(err)
	if status == 0 {
		return c.JSON(http.StatusBadGateway, chatErrorResponse{Error: "Failed to reach OpenRouter", Detail: err.Error()})
	}
	if ai.IsRetryable(err) {
		status = http.StatusBadGateway
	}
	return c.JSON(http.StatusBadGateway, chatErrorResponse{Error: "OpenRouter error", Detail: err.Error(), Status: status})
}

// SearchGames recommends library games for a free-text query. Failures are
// reported in the body with status 200 so the client can show an empty list.
func (h *AIHandler) SearchGames(c echo.Context) error {
	var req gamesSearchRequest
	if err := c.Bind(&req); err != nil || req.Query == "" {
		return c.JSON(http.StatusOK, gamesSearchResponse{Items: []model.GameSummary{}})
	}

	items, err := h.service.SearchGames(c.Request().Context(), req.Query, service.SearchHints{
		Keywords:   req.Keywords,
		Categories: req.Categories,
	})
	if err != nil {
		return c.JSON(http.StatusOK, gamesSearchResponse{Items: []model.GameSummary{}, Error: err.Error()})
	}
	if items == nil {
		items = []model.GameSummary{}
	}
	return c.JSON(http.StatusOK, gamesSearchResponse{Items: items})
}

func (h *AIHandler) Tags(c echo.Context) error {
	var req tagsRequest
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusOK, tagsResponse{Tags: []string{}})
	}

	tags, err := h.service.Tags(c.Request().Context(), req.Title, req.Overview, req.Genres)
	if err != nil {
		return c.JSON(http.StatusOK, tagsResponse{Tags: []string{}, Error: err.Error()})
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(http.StatusOK, tagsResponse{Tags: tags})
}
