package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/pptx-export-mcp/internal/tool"
)

func (s *Server) handleExportStats(w http.ResponseWriter, r *http.Request) {
	stats := s.tools.Exporter().Stats()
	if stats == nil {
		jsonError(w, "export stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"tool":  tool.Name,
		"stats": stats.Snapshot(),
	})
}
