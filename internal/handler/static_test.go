package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHandler(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(rel, content string) {
		full := filepath.Join(tmpDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	write("index.html", "<!DOCTYPE html><html><body>Club home</body></html>")
	write("admin/index.html", "<html><body>Admin login</body></html>")
	write("admin/dashboard/index.html", "<html><body>Dashboard</body></html>")
	write("assets/site.css", "body { color: black; }")
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "empty"), 0o755))

	handler := NewPageHandler(tmpDir)

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("serves home page for root path", func(t *testing.T) {
		rec := serve("/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Club home")
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("serves nested page directories", func(t *testing.T) {
		assert.Contains(t, serve("/admin").Body.String(), "Admin login")
		assert.Contains(t, serve("/admin/dashboard").Body.String(), "Dashboard")
	})

	t.Run("serves static assets", func(t *testing.T) {
		rec := serve("/assets/site.css")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "color: black")
	})

	t.Run("unknown paths are 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve("/admin/settings").Code)
		assert.Equal(t, http.StatusNotFound, serve("/empty").Code)
	})

	t.Run("api paths are 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve("/api/users").Code)
		assert.Equal(t, http.StatusNotFound, serve("/api").Code)
	})

	t.Run("traversal stays inside static dir", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.URL.Path = "/../../etc/passwd"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
