package api

import (
	"bytes"
	_ "embed"
	"net/http"

	"github.com/yuin/goldmark"
)

//go:embed usage.md
var usageDoc []byte

// handleUsage serves the service documentation as HTML.
func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := goldmark.Convert(usageDoc, &buf); err != nil {
		s.log.Error("render usage page", "error", err)
		jsonError(w, "failed to render usage page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
