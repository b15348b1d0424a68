package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/model"
	"kitten/backend/internal/service"
)

const maxRecentLimit = 100

type GamesHandler struct {
	service service.LibraryService
}

func NewGamesHandler(service service.LibraryService) *GamesHandler {
	return &GamesHandler{service: service}
}

func (h *GamesHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/games/list", h.List)
	g.GET("/games/popup", h.Popup)
	g.GET("/games/image/*", h.Image)
	g.GET("/games/search", h.Search)
	g.GET("/games/categories", h.Categories)
	g.GET("/games/category/:name", h.ByCategory)
	g.GET("/games/recent", h.Recent)
	g.GET("/games/slug/:slug", h.BySlug)
}

// List returns games.json untouched.
//
//	@Summary	Game library
//	@Tags		games
//	@Produce	json
//	@Success	200	{array}		model.Game	"games.json"
//	@Failure	500	{object}	detailResponse
//	@Router		/games/list [get]
func (h *GamesHandler) List(c echo.Context) error {
	raw, err := h.service.RawGames(c.Request().Context())
	if err != nil {
		return writeLibraryError(c, "games.json", err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// Popup returns popup.json untouched.
//
//	@Summary	Popup announcement
//	@Tags		games
//	@Produce	json
//	@Success	200	{object}	object	"popup.json"
//	@Failure	500	{object}	detailResponse
//	@Router		/games/popup [get]
func (h *GamesHandler) Popup(c echo.Context) error {
	raw, err := h.service.Popup(c.Request().Context())
	if err != nil {
		return writeLibraryError(c, "popup.json", err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *GamesHandler) Image(c echo.Context) error {
	img, err := h.service.Image(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, detailResponse{Error: "Image not found", Detail: err.Error()})
		}
		return writeServiceError(c, err)
	}
	return c.Blob(http.StatusOK, img.ContentType, img.Data)
}

func (h *GamesHandler) Search(c echo.Context) error {
	games, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeLibraryError(c, "games.json", err)
	}
	return c.JSON(http.StatusOK, nonNilGames(games))
}

func (h *GamesHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return writeLibraryError(c, "games.json", err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *GamesHandler) ByCategory(c echo.Context) error {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	games, err := h.service.ByCategory(c.Request().Context(), name)
	if err != nil {
		return writeLibraryError(c, "games.json", err)
	}
	return c.JSON(http.StatusOK, nonNilGames(games))
}

func (h *GamesHandler) Recent(c echo.Context) error {
	limit := service.DefaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		limit = min(parsed, maxRecentLimit)
	}
	games, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return writeLibraryError(c, "games.json", err)
	}
	return c.JSON(http.StatusOK, nonNilGames(games))
}

func (h *GamesHandler) BySlug(c echo.Context) error {
	game, err := h.service.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrLibraryUnavailable) {
			return writeLibraryError(c, "games.json", err)
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, game)
}

func writeLibraryError(c echo.Context, file string, err error) error {
	return c.JSON(http.StatusInternalServerError, detailResponse{Error: "Unable to read " + file, Detail: err.Error()})
}

func nonNilGames(games []model.Game) []model.Game {
	if games == nil {
		return []model.Game{}
	}
	return games
}
