package generations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/generations"
	"github.com/james-eo/portfolio/internal/shared/server/middleware"
)

type stubResumeSource struct {
	data []byte
}

func (s stubResumeSource) OpenResume(ctx context.Context) (io.ReadCloser, int64, error) {
	return io.NopCloser(bytes.NewReader(s.data)), int64(len(s.data)), nil
}

func newTestRouter(f fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth())
	api := r.Group("/api/v1")
	generations.NewHandler(f.svc, stubResumeSource{data: []byte("%PDF-1.4 uploaded")}).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	r := newTestRouter(f)

	w := doJSON(t, r, http.MethodPost, "/api/v1/resume/generate", "s-1",
		map[string]any{"templateId": f.tmplID})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID          string `json:"id"`
		DownloadURL string `json:"downloadUrl"`
		PreviewURL  string `json:"previewUrl"`
		ExpiresAt   string `json:"expiresAt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" || resp.ExpiresAt == "" {
		t.Errorf("incomplete response: %+v", resp)
	}
	if resp.DownloadURL != "/api/v1/resume/download/"+resp.ID {
		t.Errorf("downloadUrl = %s", resp.DownloadURL)
	}
	if resp.PreviewURL != "/api/v1/resume/preview/"+resp.ID {
		t.Errorf("previewUrl = %s", resp.PreviewURL)
	}

	// Download carries attachment headers; preview streams inline.
	w = doJSON(t, r, http.MethodGet, resp.DownloadURL, "s-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content-type = %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, "resume-"+resp.ID+".pdf") {
		t.Errorf("content-disposition = %s", cd)
	}
	if w.Header().Get("Content-Length") == "" {
		t.Error("content-length not set")
	}

	w = doJSON(t, r, http.MethodGet, resp.PreviewURL, "s-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "inline") || !strings.Contains(cd, "resume-preview-"+resp.ID+".pdf") {
		t.Errorf("preview content-disposition = %s", cd)
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	f := newFixture(t, nil)
	r := newTestRouter(f)

	w := doJSON(t, r, http.MethodPost, "/api/v1/resume/generate", "s-1", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing templateId: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/resume/generate", "s-1",
		map[string]any{"templateId": "no-such-id"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown template: status = %d", w.Code)
	}
}

func TestListAndDeleteEndpoints(t *testing.T) {
	f := newFixture(t, nil)
	r := newTestRouter(f)

	w := doJSON(t, r, http.MethodPost, "/api/v1/resume/generate", "s-1",
		map[string]any{"templateId": f.tmplID})
	if w.Code != http.StatusCreated {
		t.Fatalf("generate: %d", w.Code)
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/resume/generations", "s-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("list size = %d, want 1", len(items))
	}

	// Other sessions cannot see or delete the record.
	w = doJSON(t, r, http.MethodGet, "/api/v1/resume/generations", "s-other", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("other list: %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" && body != "null" {
		t.Errorf("other session sees records: %s", body)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/resume/generations/"+resp.ID, "s-other", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("stranger delete: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/v1/resume/generations/"+resp.ID, "s-1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("owner delete: status = %d", w.Code)
	}
}

func TestDirectEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	r := newTestRouter(f)

	w := doJSON(t, r, http.MethodGet, "/api/v1/resume/professional", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("direct render: %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content-type = %s", ct)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/resume/no-such-layout", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown name: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/resume/professional?download=true", "s-1", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("non-admin download: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/resume/uploaded", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("uploaded: %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("uploaded")) {
		t.Error("uploaded stream not served")
	}
}
