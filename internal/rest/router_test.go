package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resto-admin-be/internal/auth"
	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, secret string) (http.Handler, *MockMenuService) {
	t.Helper()
	menuSvc := new(MockMenuService)
	router := NewRouter(Deps{
		Menu:      menuSvc,
		Orders:    new(MockOrderService),
		Dashboard: new(MockDashboardService),
		Auth:      new(MockAuthService),
		Metrics:   metrics.NewRegistry(),
		JWTSecret: secret,
	})
	return router, menuSvc
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, "secret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_PublicReadRoute(t *testing.T) {
	router, menuSvc := newTestRouter(t, "secret")
	menuSvc.On("ListItems", mock.Anything).Return([]menu.MenuItem{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MutatingRouteRequiresToken(t *testing.T) {
	router, menuSvc := newTestRouter(t, "secret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	menuSvc.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestRouter_MutatingRouteWithValidToken(t *testing.T) {
	router, menuSvc := newTestRouter(t, "secret")
	menuSvc.On("DeleteItem", mock.Anything, "id-1").Return(nil)

	token, err := auth.GenerateToken("secret", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/menu/id-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	menuSvc.AssertExpectations(t)
}
