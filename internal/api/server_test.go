package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/pptx-export-mcp/internal/builder"
	"github.com/dgallion1/pptx-export-mcp/internal/config"
	"github.com/dgallion1/pptx-export-mcp/internal/pipeline"
	"github.com/dgallion1/pptx-export-mcp/internal/publish"
	"github.com/dgallion1/pptx-export-mcp/internal/tool"
	"github.com/spf13/afero"
)

func newTestServer(t *testing.T, fs afero.Fs, maxBody int64) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	exp := pipeline.NewExporter(
		builder.New(fs, log),
		publish.NewPublisher(fs, "/exports", log),
		pipeline.NewExportStats(time.Hour),
		log,
	)
	cfg := config.Config{
		Transport: config.TransportHTTP,
		Port:      "8090",
		HTTP:      config.HTTPConfig{MaxBodyBytes: maxBody, ShutdownTimeout: time.Second},
	}
	return NewServer(tool.NewHandler(exp, log), log, cfg)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

const helloBody = `{
  "filename": "api deck",
  "slides": [{
    "backgroundColor": "F0F0F0",
    "elements": [{"type": "text", "text": "Hello", "options": {"x": 1, "y": 1, "w": 8, "h": 1, "fontSize": 24, "bold": true}}]
  }]
}`

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, afero.NewMemMapFs(), 1<<20), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"ok"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestListTools(t *testing.T) {
	rec := do(t, newTestServer(t, afero.NewMemMapFs(), 1<<20), http.MethodGet, "/api/tools", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Tools []struct {
			Name        string         `json:"name"`
			InputSchema map[string]any `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Tools) != 1 || body.Tools[0].Name != tool.Name {
		t.Fatalf("expected one %s tool, got %+v", tool.Name, body.Tools)
	}
	if body.Tools[0].InputSchema["type"] != "object" {
		t.Fatalf("expected object schema, got %v", body.Tools[0].InputSchema)
	}
}

func TestCallToolSuccess(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestServer(t, fs, 1<<20)

	rec := do(t, s, http.MethodPost, "/api/tools/pptx_export", helloBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res publish.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(res.Filename, "api_deck_") || !strings.HasSuffix(res.Filename, ".pptx") {
		t.Fatalf("unexpected filename %q", res.Filename)
	}
	if res.Filetype != publish.MIMEType {
		t.Fatalf("unexpected filetype %q", res.Filetype)
	}
	if ok, _ := afero.Exists(fs, "/exports/"+res.Filename); !ok {
		t.Fatalf("expected %s to be written", res.Filename)
	}

	stats := do(t, s, http.MethodGet, "/api/stats/export", "")
	var snap struct {
		Stats pipeline.StatsSnapshot `json:"stats"`
	}
	if err := json.Unmarshal(stats.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if snap.Stats.Count != 1 {
		t.Fatalf("expected 1 recorded export, got %d", snap.Stats.Count)
	}
}

func TestCallToolInvalidInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestServer(t, fs, 1<<20)

	for _, body := range []string{"", `{}`, `{"slides": []}`, `{"slides": "one"}`} {
		rec := do(t, s, http.MethodPost, "/api/tools/pptx_export", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
		var eb tool.ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &eb); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if eb.Success || eb.Error == "" {
			t.Fatalf("expected failure body, got %+v", eb)
		}
	}
	if ok, _ := afero.DirExists(fs, "/exports"); ok {
		t.Fatal("expected no export directory after invalid input")
	}
}

func TestCallToolDirectoryError(t *testing.T) {
	s := newTestServer(t, afero.NewReadOnlyFs(afero.NewMemMapFs()), 1<<20)

	rec := do(t, s, http.MethodPost, "/api/tools/pptx_export", helloBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success": false`) {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
}

func TestCallUnknownTool(t *testing.T) {
	rec := do(t, newTestServer(t, afero.NewMemMapFs(), 1<<20), http.MethodPost, "/api/tools/docx_export", `{}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCallToolBadJSON(t *testing.T) {
	rec := do(t, newTestServer(t, afero.NewMemMapFs(), 1<<20), http.MethodPost, "/api/tools/pptx_export", `{"slides": [`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCallToolBodyTooLarge(t *testing.T) {
	rec := do(t, newTestServer(t, afero.NewMemMapFs(), 16), http.MethodPost, "/api/tools/pptx_export", helloBody)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}
