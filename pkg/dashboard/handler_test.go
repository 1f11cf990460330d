package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"founderdesk/pkg/config"
	"founderdesk/pkg/response"
	"founderdesk/pkg/roster"
	"founderdesk/pkg/token"
)

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) View(ctx context.Context, signedToken string) (Dashboard, error) {
	args := m.Called(ctx, signedToken)
	d, _ := args.Get(0).(Dashboard)
	return d, args.Error(1)
}

func (m *mockDashboardService) UpdateProfile(ctx context.Context, signedToken, memberID string, updates map[string]any) error {
	args := m.Called(ctx, signedToken, memberID, updates)
	return args.Error(0)
}

func setupRouter(service DashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestViewDashboard_Success(t *testing.T) {
	svc := new(mockDashboardService)
	r := setupRouter(svc)

	svc.On("View", mock.Anything, "tok123").Return(Dashboard{
		Startup: roster.Startup{ID: "rec1", Name: "Acme", PrimaryContact: "founder@acme.com"},
		Members: []roster.TeamMember{
			{ID: "recM1", Name: "Alex", Email: "a@x.com", Position: "CEO"},
		},
		CurrentMemberID: "recM1",
		EditScope:       config.EditScopeSelf,
		Token:           "tok123",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/tok123", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	require.Contains(t, body, "Acme")
	require.Contains(t, body, "Alex")
	require.Contains(t, body, "tok123")
}

func TestViewDashboard_InvalidToken(t *testing.T) {
	svc := new(mockDashboardService)
	r := setupRouter(svc)

	svc.On("View", mock.Anything, "badtoken").Return(Dashboard{}, token.ErrTokenInvalid)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/badtoken", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "Invalid or Expired Link")
}

func TestUpdateProfileHandler_Success(t *testing.T) {
	svc := new(mockDashboardService)
	r := setupRouter(svc)

	svc.On("UpdateProfile", mock.Anything, "tok123", "recM1", map[string]any{
		"Mobile*": "0400000000",
	}).Return(nil)

	body := `{"token":"tok123","memberId":"recM1","updates":{"Mobile*":"0400000000"}}`
	req := httptest.NewRequest(http.MethodPost, "/update-profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Profile updated successfully!", resp.Message)

	svc.AssertExpectations(t)
}

func TestUpdateProfileHandler_InvalidPayload(t *testing.T) {
	svc := new(mockDashboardService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/update-profile", strings.NewReader(`{"token":"tok123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfileHandler_ErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid token", token.ErrTokenInvalid, http.StatusUnauthorized},
		{"not authorized", ErrNotAuthorized, http.StatusForbidden},
		{"no editable fields", ErrNoEditableFields, http.StatusBadRequest},
		{"member not found", roster.ErrMemberNotFound, http.StatusNotFound},
		{"store error", context.DeadlineExceeded, http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockDashboardService)
			r := setupRouter(svc)

			svc.On("UpdateProfile", mock.Anything, "tok123", "recM1", mock.Anything).Return(tc.err)

			body := `{"token":"tok123","memberId":"recM1","updates":{"Mobile*":"0400000000"}}`
			req := httptest.NewRequest(http.MethodPost, "/update-profile", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantCode, w.Code)

			var resp response.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.False(t, resp.Success)
		})
	}
}
