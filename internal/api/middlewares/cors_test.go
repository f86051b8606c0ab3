package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/password-checker/internal/api/middlewares"
)

func TestCors_AllowsListedOrigin(t *testing.T) {
	wrapped := mw.Cors(mw.DefaultAllowedOrigins)(okHandler)

	req := httptest.NewRequest("POST", "/check", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected allow-origin echo, got %q", got)
	}
}

func TestCors_BlocksUnknownOrigin(t *testing.T) {
	wrapped := mw.Cors(mw.DefaultAllowedOrigins)(okHandler)

	req := httptest.NewRequest("POST", "/check", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", rec.Code)
	}
}

func TestCors_SameOriginPassesThrough(t *testing.T) {
	wrapped := mw.Cors(nil)(okHandler)

	req := httptest.NewRequest("GET", "/generate", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("No allow-origin expected without Origin header")
	}
}

func TestCors_WildcardAndPreflight(t *testing.T) {
	wrapped := mw.Cors([]string{"*"})(okHandler)

	req := httptest.NewRequest("OPTIONS", "/check", nil)
	req.Header.Set("Origin", "https://anything.example")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204 preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anything.example" {
		t.Errorf("Expected wildcard to echo origin, got %q", got)
	}
}
