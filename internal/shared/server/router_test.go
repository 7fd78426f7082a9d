package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placement-backend/internal/shared/config"
)

func TestRouterHealth(t *testing.T) {
	router := NewRouter(config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", resp.Body.String())
	}
}

func TestRouterMetrics(t *testing.T) {
	router := NewRouter(config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "analysis_performed_total") {
		t.Fatalf("expected metrics output, got: %s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7000", ":7000"},
	}
	for _, tc := range cases {
		if got := Addr(tc.in); got != tc.want {
			t.Fatalf("Addr(%q): expected %q, got %q", tc.in, got, tc.want)
		}
	}
}
