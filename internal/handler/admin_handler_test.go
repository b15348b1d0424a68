package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"kitten/backend/internal/handler"
	"kitten/backend/internal/model"
	"kitten/backend/internal/quota"
	"kitten/backend/internal/service"
	"kitten/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockAuthService(ctrl)
	h := handler.NewAdminHandlerHelper(mockAuth, nil, nil)

	expires := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	mockAuth.EXPECT().
		Login(gomock.Any(), "hunter2").
		Return(&service.LoginResponse{Token: "jwt-token", ExpiresAt: expires}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/admin/login", map[string]string{"password": "hunter2"})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Login(c))

	var resp handler.LoginResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "jwt-token", resp.Token)
	require.Equal(t, "2025-05-01T00:00:00Z", resp.ExpiresAt)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "should set auth cookie")
	require.Equal(t, handler.AuthCookieName, cookies[0].Name)
	require.Equal(t, "jwt-token", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestAdminHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "empty_password", err: service.ErrPasswordRequired, status: http.StatusBadRequest, message: "password is required"},
		{
			name:    "wrong_password",
			err:     fmt.Errorf("%w: %w", service.ErrUnauthorized, service.ErrInvalidPassword),
			status:  http.StatusUnauthorized,
			message: "invalid password",
		},
		{
			name:    "disabled",
			err:     fmt.Errorf("%w: %w", service.ErrUnauthorized, service.ErrAdminDisabled),
			status:  http.StatusUnauthorized,
			message: "invalid password",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuth := mock.NewMockAuthService(ctrl)
			h := handler.NewAdminHandlerHelper(mockAuth, nil, nil)

			mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			e := newTestEcho()
			req := newJSONRequest(http.MethodPost, "/admin/login", map[string]string{"password": "x"})
			c, rec := newTestContext(e, req)

			require.NoError(t, h.Login(c))

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.message, resp["error"])
			require.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAdminHandler_Logout_ClearsCookie(t *testing.T) {
	h := handler.NewAdminHandlerHelper(nil, nil, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/admin/logout", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Logout(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, handler.AuthCookieName, cookies[0].Name)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestAdminHandler_ProxyUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProxy := mock.NewMockProxyService(ctrl)
	h := handler.NewAdminHandlerHelper(nil, mockProxy, nil)

	mockProxy.EXPECT().Policy().Return(service.ProxyPolicy{Allow: []string{"nitter.net"}, Deny: []string{"netflix.com"}})
	mockProxy.EXPECT().Usage().Return([]quota.Usage{
		{Identity: "user-1", Day: "2025-05-01", Count: 4, Remaining: 21},
	})

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/admin/proxy/usage", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ProxyUsage(c))

	var resp handler.ProxyUsageResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Items, 1)
	require.Equal(t, 21, resp.Items[0].Remaining)
	require.Equal(t, []string{"nitter.net"}, resp.Allow)
	require.Equal(t, []string{"netflix.com"}, resp.Deny)
	require.Nil(t, resp.Remaining)
}

func TestAdminHandler_ProxyUsage_FilteredByUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProxy := mock.NewMockProxyService(ctrl)
	h := handler.NewAdminHandlerHelper(nil, mockProxy, nil)

	mockProxy.EXPECT().Policy().Return(service.ProxyPolicy{})
	mockProxy.EXPECT().Usage().Return([]quota.Usage{
		{Identity: "user-1", Day: "2025-05-01", Count: 4, Remaining: 21},
		{Identity: "user-2", Day: "2025-05-01", Count: 1, Remaining: 24},
	})
	mockProxy.EXPECT().Remaining("user-3").Return(25)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/admin/proxy/usage?uid=user-3", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ProxyUsage(c))

	var resp handler.ProxyUsageResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Empty(t, resp.Items)
	require.Equal(t, []string{}, resp.Allow)
	require.Equal(t, "user-3", resp.UID)
	require.NotNil(t, resp.Remaining)
	require.Equal(t, 25, *resp.Remaining)
}

func TestAdminHandler_ListFeedback_DefaultsToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeedback := mock.NewMockFeedbackService(ctrl)
	h := handler.NewAdminHandlerHelper(nil, nil, mockFeedback)

	mockFeedback.EXPECT().List(gomock.Any(), "all", 0).Return([]model.FeedbackIdea{}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/admin/feedback", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ListFeedback(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestAdminHandler_SetFeedbackStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeedback := mock.NewMockFeedbackService(ctrl)
	h := handler.NewAdminHandlerHelper(nil, nil, mockFeedback)

	idea := sampleIdea()
	idea.Status = model.FeedbackStatusDone
	mockFeedback.EXPECT().SetStatus(gomock.Any(), int64(5), "done").Return(idea, nil)
	mockFeedback.EXPECT().SetStatus(gomock.Any(), int64(6), "bogus").Return(nil, service.ErrInvalid)

	e := newTestEcho()

	req := newJSONRequest(http.MethodPatch, "/admin/feedback/5/status", map[string]string{"status": "done"})
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "5"})
	require.NoError(t, h.SetFeedbackStatus(c))
	var resp handler.IdeaResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, model.FeedbackStatusDone, resp.Status)

	req = newJSONRequest(http.MethodPatch, "/admin/feedback/6/status", map[string]string{"status": "bogus"})
	c, rec = newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "6"})
	require.NoError(t, h.SetFeedbackStatus(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
