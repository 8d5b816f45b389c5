package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/certificates"},
		{http.MethodPost, "/api/v1/certificates"},
		{http.MethodGet, "/api/v1/dashboard/stats"},
		{http.MethodPut, "/api/v1/admin/certificates/1"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodGet, "/api/v1/events"},
	}
	for _, tc := range paths {
		w := performRequest(router, tc.method, tc.path)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/unknown")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
