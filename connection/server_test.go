package connection

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Api is running!")
}

func TestSetupRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Mutating routes are token-guarded; the guard runs before any storage
// access.
func TestSetupRouter_MutationsRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(nil)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/tasks"},
		{http.MethodPatch, "/api/tasks/some-id"},
		{http.MethodDelete, "/api/tasks/some-id"},
		{http.MethodPatch, "/api/users/some-id"},
		{http.MethodDelete, "/api/users/some-id"},
		{http.MethodGet, "/api/board"},
	}

	for _, r := range routes {
		req := httptest.NewRequest(r.method, r.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.method, r.path)
	}
}
