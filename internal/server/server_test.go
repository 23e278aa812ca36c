package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/config"
)

func newTestServer(t *testing.T, custom map[string]string) *Server {
	t.Helper()

	norm, err := colour.NewNormalizer(custom)
	if err != nil {
		t.Fatalf("NewNormalizer returned error: %v", err)
	}

	return New(config.Config{ListenAddr: "127.0.0.1:0"}, norm, nil)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleContrast(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/api/v1/contrast?fg=%23ffffff&bg=black")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res colour.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Foreground != "#ffffff" || res.Background != "#000000" {
		t.Errorf("normalized pair = %q/%q, want #ffffff/#000000", res.Foreground, res.Background)
	}
	if math.Abs(res.Ratio-21.0) > 1e-9 {
		t.Errorf("Ratio = %f, want 21", res.Ratio)
	}
	if res.Normal != colour.LevelAAA || res.Large != colour.LevelAAA {
		t.Errorf("levels = %v/%v, want AAA/AAA", res.Normal, res.Large)
	}
}

func TestHandleContrastInvalidColour(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/api/v1/contrast?fg=notacolor&bg=black")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var res errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Error != "invalid colour" {
		t.Errorf("error = %q, want \"invalid colour\"", res.Error)
	}
}

func TestHandleContrastMissingParams(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{
		"/api/v1/contrast",
		"/api/v1/contrast?fg=red",
		"/api/v1/contrast?bg=red",
	} {
		if rec := doGet(t, s, path); rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, rec.Code)
		}
	}
}

func TestHandleColour(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/api/v1/colour/red")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res colourResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Hex != "#ff0000" {
		t.Errorf("Hex = %q, want #ff0000", res.Hex)
	}
	if res.RGB != (colour.RGB{R: 255}) {
		t.Errorf("RGB = %+v, want {255 0 0}", res.RGB)
	}
	if math.Abs(res.Luminance-0.2126) > 1e-9 {
		t.Errorf("Luminance = %f, want 0.2126", res.Luminance)
	}
}

func TestHandleColourInvalid(t *testing.T) {
	s := newTestServer(t, nil)

	if rec := doGet(t, s, "/api/v1/colour/bogus"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleColourCustomName(t *testing.T) {
	s := newTestServer(t, map[string]string{"brand": "#1a2b3c"})

	rec := doGet(t, s, "/api/v1/colour/brand")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res colourResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Hex != "#1a2b3c" {
		t.Errorf("Hex = %q, want #1a2b3c", res.Hex)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contrast?fg=red&bg=white", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}
