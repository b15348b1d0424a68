package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/model"
	"kitten/backend/internal/service"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

type createIdeaRequest struct {
	UID    string `json:"uid"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type voteRequest struct {
	UID string `json:"uid"`
}

type ideaResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Detail     string   `json:"detail"`
	Status     string   `json:"status"`
	CreatedBy  string   `json:"createdBy"`
	VotesCount int      `json:"votesCount"`
	Voters     []string `json:"voters"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/feedback/ideas", h.List)
	g.POST("/feedback/ideas", h.Create)
	g.POST("/feedback/ideas/:id/vote", h.Vote)
}

func (h *FeedbackHandler) List(c echo.Context) error {
	limit, ok := parseLimit(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	ideas, err := h.service.List(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toIdeaResponses(ideas))
}

func (h *FeedbackHandler) Create(c echo.Context) error {
	var req createIdeaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	idea, err := h.service.Create(c.Request().Context(), req.UID, req.Title, req.Detail)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toIdeaResponse(*idea))
}

func (h *FeedbackHandler) Vote(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	idea, err := h.service.Vote(c.Request().Context(), id, req.UID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toIdeaResponse(*idea))
}

// parseLimit reads an optional positive ?limit.
func parseLimit(c echo.Context) (int, bool) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}

func toIdeaResponses(ideas []model.FeedbackIdea) []ideaResponse {
	response := make([]ideaResponse, 0, len(ideas))
	for _, idea := range ideas {
		response = append(response, toIdeaResponse(idea))
	}
	return response
}

func toIdeaResponse(idea model.FeedbackIdea) ideaResponse {
	voters := idea.Voters
	if voters == nil {
		voters = []string{}
	}
	return ideaResponse{
		ID:         strconv.FormatInt(idea.ID, 10),
		Title:      idea.Title,
		Detail:     idea.Detail,
		Status:     idea.Status,
		CreatedBy:  idea.CreatedBy,
		VotesCount: idea.VotesCount,
		Voters:     voters,
		CreatedAt:  idea.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  idea.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
