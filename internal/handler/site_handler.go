package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kitten/backend/internal/catalog"
	"kitten/backend/internal/service"
)

type SiteHandler struct {
	service service.SiteService
}

type instanceResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type siteResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	DirectURL   string             `json:"directUrl,omitempty"`
	Tags        []string           `json:"tags"`
	Instances   []instanceResponse `json:"instances"`
}

func NewSiteHandler(service service.SiteService) *SiteHandler {
	return &SiteHandler{service: service}
}

func (h *SiteHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/proxy/sites", h.List)
	g.GET("/proxy/sites/:id", h.Get)
	g.GET("/proxy/sites/:id/status", h.Status)
}

func (h *SiteHandler) List(c echo.Context) error {
	sites := h.service.List(c.Request().Context())
	response := make([]siteResponse, 0, len(sites))
	for _, site := range sites {
		response = append(response, toSiteResponse(site))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *SiteHandler) Get(c echo.Context) error {
	site, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSiteResponse(*site))
}

// Status probes the site's instances live. It is slow by nature and not cached.
func (h *SiteHandler) Status(c echo.Context) error {
	status, err := h.service.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func toSiteResponse(site catalog.Site) siteResponse {
	instances := make([]instanceResponse, 0, len(site.Instances))
	for _, inst := range site.Instances {
		instances = append(instances, instanceResponse{Label: inst.Label, URL: inst.URL})
	}
	tags := site.Tags
	if tags == nil {
		tags = []string{}
	}
	return siteResponse{
		ID:          site.ID,
		Title:       site.Title,
		Description: site.Description,
		DirectURL:   site.DirectURL,
		Tags:        tags,
		Instances:   instances,
	}
}
