package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLiveness(t *testing.T) {
	rec := httptest.NewRecorder()
	Liveness()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", rec.Body.String())
	}
}

func TestReadiness_Ready(t *testing.T) {
	rec := httptest.NewRecorder()
	Readiness(func() (bool, []string) {
		return true, []string{"memory", "gazetteer", "nominatim"}
	})(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out struct {
		Status string   `json:"status"`
		Tiers  []string `json:"tiers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status != "ready" || len(out.Tiers) != 3 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestReadiness_NotReady(t *testing.T) {
	rec := httptest.NewRecorder()
	Readiness(func() (bool, []string) { return false, nil })(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
