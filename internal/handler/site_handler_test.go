package handler_test

import (
	"net/http"
	"testing"
	"time"

	"kitten/backend/internal/catalog"
	"kitten/backend/internal/handler"
	"kitten/backend/internal/service"
	"kitten/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSiteHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSiteService(ctrl)
	h := handler.NewSiteHandlerHelper(mockService)

	mockService.EXPECT().List(gomock.Any()).Return([]catalog.Site{
		{
			ID:        "wiki",
			Title:     "Wikipedia",
			DirectURL: "https://www.wikipedia.org",
			Instances: []catalog.Instance{{Label: "main", URL: "https://www.wikipedia.org"}},
		},
		{ID: "docs", Title: "Docs", DirectURL: "https://docs.example"},
	})

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/proxy/sites", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.List(c))

	var resp []handler.SiteResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 2)
	require.Equal(t, "wiki", resp[0].ID)
	require.Len(t, resp[0].Instances, 1)
	require.NotNil(t, resp[1].Instances)
	require.Empty(t, resp[1].Instances)
	require.NotNil(t, resp[1].Tags)
}

func TestSiteHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSiteService(ctrl)
	h := handler.NewSiteHandlerHelper(mockService)

	mockService.EXPECT().Get(gomock.Any(), "missing").Return(nil, service.ErrNotFound)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/proxy/sites/missing", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "missing"})

	require.NoError(t, h.Get(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusNotFound, &resp)
	require.Equal(t, "resource not found", resp["error"])
}

func TestSiteHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockSiteService(ctrl)
	h := handler.NewSiteHandlerHelper(mockService)

	checked := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().Status(gomock.Any(), "wiki").Return(&service.SiteStatus{
		SiteID:    "wiki",
		CheckedAt: checked,
		Instances: []service.InstanceStatus{
			{Label: "main", URL: "https://www.wikipedia.org", Up: true, StatusCode: 200, LatencyMS: 12},
			{Label: "mirror", URL: "https://mirror.example", Error: "fetch failed"},
		},
	}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/proxy/sites/wiki/status", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "wiki"})

	require.NoError(t, h.Status(c))

	var resp service.SiteStatus
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "wiki", resp.SiteID)
	require.True(t, resp.CheckedAt.Equal(checked))
	require.Len(t, resp.Instances, 2)
	require.True(t, resp.Instances[0].Up)
	require.False(t, resp.Instances[1].Up)
	require.Equal(t, "fetch failed", resp.Instances[1].Error)
}
