package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/consumables-tracker/internal/http"
)

// The browser frontend runs on a different origin, so cross-origin reads and
// preflighted mutations must both be allowed.
func TestCrossOriginRequests(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected Access-Control-Allow-Origin header on cross-origin GET")
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/products", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, preflight)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected Access-Control-Allow-Methods header on preflight")
	}
}
