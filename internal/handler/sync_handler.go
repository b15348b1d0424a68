package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/model"
	"kitten/backend/internal/service"
)

type SyncHandler struct {
	service service.SyncService
}

type syncTogglesRequest struct {
	Favorites bool `json:"favorites"`
	History   bool `json:"history"`
	Quests    bool `json:"quests"`
}

type syncTogglesResponse struct {
	Favorites bool    `json:"favorites"`
	History   bool    `json:"history"`
	Quests    bool    `json:"quests"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

type syncDocumentResponse struct {
	Dataset   string          `json:"dataset"`
	Data      json.RawMessage `json:"data"`
	Hash      string          `json:"hash"`
	UpdatedAt string          `json:"updatedAt"`
}

func NewSyncHandler(service service.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users/:uid/sync", h.GetToggles)
	g.PUT("/users/:uid/sync", h.PutToggles)
	g.GET("/users/:uid/data/:dataset", h.GetDocument)
	g.PUT("/users/:uid/data/:dataset", h.PutDocument)
}

func (h *SyncHandler) GetToggles(c echo.Context) error {
	toggles, err := h.service.GetToggles(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSyncTogglesResponse(*toggles))
}

func (h *SyncHandler) PutToggles(c echo.Context) error {
	var req syncTogglesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	toggles, err := h.service.SetToggles(c.Request().Context(), model.SyncToggles{
		UID:       c.Param("uid"),
		Favorites: req.Favorites,
		History:   req.History,
		Quests:    req.Quests,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSyncTogglesResponse(*toggles))
}

// GetDocument answers 304 when If-None-Match carries the current hash.
func (h *SyncHandler) GetDocument(c echo.Context) error {
	doc, err := h.service.GetDocument(c.Request().Context(), c.Param("uid"), c.Param("dataset"))
	if err != nil {
		return writeServiceError(c, err)
	}
	etag := `"` + doc.Hash + `"`
	c.Response().Header().Set("ETag", etag)
	if match := c.Request().Header.Get("If-None-Match"); match != "" && match == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, toSyncDocumentResponse(*doc))
}

// PutDocument stores the raw request body as the dataset's mirrored copy.
func (h *SyncHandler) PutDocument(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, service.MaxSyncDocumentBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	doc, err := h.service.PutDocument(c.Request().Context(), c.Param("uid"), c.Param("dataset"), json.RawMessage(body))
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set("ETag", `"`+doc.Hash+`"`)
	return c.JSON(http.StatusOK, toSyncDocumentResponse(*doc))
}

func toSyncTogglesResponse(t model.SyncToggles) syncTogglesResponse {
	var updatedAt *string
	if !t.UpdatedAt.IsZero() {
		value := t.UpdatedAt.UTC().Format(time.RFC3339)
		updatedAt = &value
	}
	return syncTogglesResponse{
		Favorites: t.Favorites,
		History:   t.History,
		Quests:    t.Quests,
		UpdatedAt: updatedAt,
	}
}

func toSyncDocumentResponse(doc model.SyncDocument) syncDocumentResponse {
	return syncDocumentResponse{
		Dataset:   doc.Dataset,
		Data:      doc.Data,
		Hash:      doc.Hash,
		UpdatedAt: doc.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
