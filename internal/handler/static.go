package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PageHandler serves the site's pre-built pages and assets from staticDir.
// A request for a directory, such as /admin/dashboard, is answered with that
// directory's index.html. Unlike an SPA fallback, unknown paths are 404.
type PageHandler struct {
	staticDir string
	indexFile string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{
		staticDir: staticDir,
		indexFile: "index.html",
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)

	if clean == "/api" || strings.HasPrefix(clean, "/api/") {
		http.NotFound(w, r)
		return
	}

	filePath := filepath.Join(h.staticDir, filepath.FromSlash(clean))

	info, err := os.Stat(filePath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if info.IsDir() {
		filePath = filepath.Join(filePath, h.indexFile)
		if info, err = os.Stat(filePath); err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		// Pages reflect session state, so never let a proxy cache them.
		w.Header().Set("Cache-Control", "no-store")
	}

	http.ServeFile(w, r, filePath)
}
