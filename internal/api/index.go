package api

import (
	"embed"
	"net/http"
)

//go:embed web
var webFS embed.FS

// handleIndex serves the embedded chat widget.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		http.Error(w, "widget unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
