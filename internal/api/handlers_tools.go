package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/tool"
	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleListTools returns the same tool definitions MCP tools/list does.
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"tools": []mcp.Tool{tool.Definition()},
	})
}

// handleCallTool runs a tool with the JSON request body as its arguments.
func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.HTTP.MaxBodyBytes)

	args := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.tools.Call(r.Context(), name, args)
	if errors.Is(err, tool.ErrUnknownOperation) {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	switch {
	case !resp.IsError:
	case errors.Is(resp.Err, deck.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, resp.Text())
}
