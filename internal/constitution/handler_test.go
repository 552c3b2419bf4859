package constitution_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lianzhou/tizhi/internal/constitution"
	"github.com/lianzhou/tizhi/pkg/routes"
)

func newEstimateMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	routes.Register(mux, newSystem(t).Handler().Routes())
	return mux
}

func postEstimate(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/constitution/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

func TestEstimateSuccess(t *testing.T) {
	mux := newEstimateMux(t)

	rec := postEstimate(t, mux, `{"text": "我总是怕冷，手脚冰凉，喜欢喝热水"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %s", ct)
	}

	var resp constitution.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PrimaryType != constitution.TypeYangDeficiency {
		t.Errorf("primary_type: got %s, want %s", resp.PrimaryType, constitution.TypeYangDeficiency)
	}
	if resp.Disclaimer == "" {
		t.Error("disclaimer missing")
	}
}

func TestEstimateWithMeta(t *testing.T) {
	mux := newEstimateMux(t)

	// meta is accepted but must not change the classification
	rec := postEstimate(t, mux, `{"text": "我总是怕冷，手脚冰凉，喜欢喝热水", "meta": {"age": 35, "sex": "female", "notes": "无"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp constitution.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PrimaryType != constitution.TypeYangDeficiency {
		t.Errorf("primary_type: got %s, want %s", resp.PrimaryType, constitution.TypeYangDeficiency)
	}
}

func TestEstimateShortTextIsNotAnError(t *testing.T) {
	mux := newEstimateMux(t)

	rec := postEstimate(t, mux, `{"text": "头疼"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp constitution.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PrimaryType != constitution.TypeInsufficient {
		t.Errorf("primary_type: got %s, want %s", resp.PrimaryType, constitution.TypeInsufficient)
	}
}

func TestEstimateEmptyText(t *testing.T) {
	mux := newEstimateMux(t)

	rec := postEstimate(t, mux, `{"text": ""}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "text 字段不能为空" {
		t.Errorf("error message: got %q", resp["error"])
	}
}

func TestEstimateMalformedJSON(t *testing.T) {
	mux := newEstimateMux(t)

	rec := postEstimate(t, mux, `{"text": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestEstimateMethodNotAllowed(t *testing.T) {
	mux := newEstimateMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/constitution/estimate", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
}
