package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passrank/passrank-api/pkg/models"
	"github.com/passrank/passrank-api/pkg/util"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	util.InitConfig()
	return Router(nil)
}

func postCheck(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheck(t *testing.T) {
	r := testRouter(t)

	w := postCheck(t, r, `{"password": "Password1!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CheckResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if resp.Category != "Strong" {
		t.Errorf("expected Strong, got %s", resp.Category)
	}
	if resp.EntropyBits < 65 || resp.EntropyBits > 66 {
		t.Errorf("expected ~65.5 bits, got %f", resp.EntropyBits)
	}
	if resp.PoolSize != 94 || resp.Length != 10 {
		t.Errorf("unexpected pool/length: %d/%d", resp.PoolSize, resp.Length)
	}
	if len(resp.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", resp.Suggestions)
	}
	if !resp.Classes.Uppercase || !resp.Classes.Lowercase || !resp.Classes.Digits || !resp.Classes.Symbols {
		t.Errorf("expected all classes present, got %+v", resp.Classes)
	}
}

func TestCheckEmptyPassword(t *testing.T) {
	r := testRouter(t)

	w := postCheck(t, r, `{"password": ""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("empty password must be accepted, got %d", w.Code)
	}

	var resp models.CheckResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.EntropyBits != 0 || resp.Category != "Very Weak" {
		t.Errorf("expected 0 bits / Very Weak, got %f / %s", resp.EntropyBits, resp.Category)
	}
	if len(resp.Suggestions) != 4 {
		t.Errorf("expected 4 suggestions, got %v", resp.Suggestions)
	}
}

func TestCheckMissingField(t *testing.T) {
	r := testRouter(t)

	if w := postCheck(t, r, `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing field: expected 400, got %d", w.Code)
	}
	if w := postCheck(t, r, `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("bad json: expected 400, got %d", w.Code)
	}
}

func TestIndex(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), "Password strength") {
		t.Error("expected the strength page")
	}
}

func TestMeta(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/meta", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var meta struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &meta); err != nil {
		t.Fatalf("bad meta body: %v", err)
	}
	if meta.Version == "" {
		t.Error("expected a version")
	}
}

func TestMetrics(t *testing.T) {
	r := testRouter(t)

	// Generate at least one evaluation first.
	postCheck(t, r, `{"password": "abc"}`)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "passrank_evaluations_total") {
		t.Error("expected evaluation counter in metrics output")
	}
}
