// Package tool exposes the export pipeline as the pptx_export operation,
// both to the MCP server and to the HTTP adapter.
package tool

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgallion1/pptx-export-mcp/internal/pipeline"
)

const (
	Name        = "pptx_export"
	Description = "Export data to PowerPoint (PPTX) format with full support for text, tables, charts, images, and shapes"
)

//go:embed schema.json
var schema []byte

// Schema returns the JSON Schema of the tool's input.
func Schema() json.RawMessage {
	return json.RawMessage(schema)
}

// ErrUnknownOperation is returned for any operation other than Name.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrorBody is the payload of a failed call.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Response is the outcome of a known operation. Body is either a
// publish.Result or an ErrorBody; Err is set for the latter.
type Response struct {
	Body    any
	IsError bool
	Err     error
}

// Text renders the body as two-space indented JSON.
func (r *Response) Text() string {
	b, err := json.MarshalIndent(r.Body, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success": false, "error": %q}`, err.Error())
	}
	return string(b)
}

// Handler dispatches calls by operation name.
type Handler struct {
	exporter *pipeline.Exporter
	log      *slog.Logger
}

func NewHandler(exporter *pipeline.Exporter, log *slog.Logger) *Handler {
	return &Handler{exporter: exporter, log: log}
}

// Exporter returns the underlying pipeline.
func (h *Handler) Exporter() *pipeline.Exporter {
	return h.exporter
}

// Call runs the named operation. Only an unknown name returns an error;
// export failures come back as an error Response.
func (h *Handler) Call(ctx context.Context, name string, args map[string]any) (*Response, error) {
	if name != Name {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	out, err := h.exporter.Export(ctx, args)
	if err != nil {
		h.log.Error("pptx export failed", "error", err)
		return &Response{
			Body:    ErrorBody{Success: false, Error: err.Error()},
			IsError: true,
			Err:     err,
		}, nil
	}
	h.log.Info("pptx generated",
		"file", out.Result.Filename,
		"size", out.Result.Filesize,
		"slides", out.Slides,
		"layout", out.Layout,
	)
	return &Response{Body: out.Result}, nil
}
