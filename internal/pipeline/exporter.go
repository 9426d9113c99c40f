// Package pipeline turns raw tool arguments into a published pptx artifact.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgallion1/pptx-export-mcp/internal/builder"
	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/publish"
)

// Phase names an export step in logs.
type Phase string

const (
	PhaseValidating  Phase = "validating"
	PhaseBuilding    Phase = "building"
	PhaseSerializing Phase = "serializing"
	PhasePublishing  Phase = "publishing"
)

// Outcome is a successful export.
type Outcome struct {
	Result   publish.Result
	Warnings []*builder.ElementError
	Slides   int
	Layout   string
}

// Exporter serializes exports: one call runs at a time.
type Exporter struct {
	mu        sync.Mutex
	builder   *builder.Builder
	publisher *publish.Publisher
	stats     *ExportStats
	log       *slog.Logger
}

func NewExporter(b *builder.Builder, p *publish.Publisher, stats *ExportStats, log *slog.Logger) *Exporter {
	return &Exporter{
		builder:   b,
		publisher: p,
		stats:     stats,
		log:       log,
	}
}

// Stats returns the tracker for successful exports.
func (e *Exporter) Stats() *ExportStats {
	return e.stats
}

// Export runs the pipeline for raw tool arguments. Errors wrap
// deck.ErrInvalidInput, publish.ErrDirectory or publish.ErrWrite.
func (e *Exporter) Export(ctx context.Context, args map[string]any) (*Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	log := e.log.With("phase", PhaseValidating)

	// The context is only checked before work starts; an export is never
	// abandoned halfway.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := deck.Decode(args)
	if err != nil {
		log.Warn("request rejected", "error", err)
		return nil, err
	}
	log = e.log.With("filename", req.Filename, "slides", len(req.Slides))
	if req.Description != "" {
		log = log.With("description", req.Description)
	}

	log.Debug("export started", "phase", PhaseBuilding)
	built := e.builder.Build(req)

	data, err := built.Deck.Bytes()
	if err != nil {
		log.Error("serialize failed", "phase", PhaseSerializing, "error", err)
		return nil, fmt.Errorf("%w: serialize presentation: %v", publish.ErrWrite, err)
	}

	res, err := e.publisher.Publish(data, req.Filename)
	if err != nil {
		log.Error("publish failed", "phase", PhasePublishing, "error", err)
		return nil, err
	}

	elapsed := time.Since(start)
	if e.stats != nil {
		e.stats.Record(ExportSample{
			DurationMs: elapsed.Milliseconds(),
			Bytes:      len(data),
			Slides:     len(built.Deck.Slides()),
			Warnings:   len(built.Warnings),
		})
	}
	log.Info("export complete",
		"file", res.Filename,
		"path", filepath.Join(e.publisher.Dir(), res.Filename),
		"size", res.Filesize,
		"warnings", len(built.Warnings),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Outcome{
		Result:   res,
		Warnings: built.Warnings,
		Slides:   len(built.Deck.Slides()),
		Layout:   built.Deck.Layout().Name,
	}, nil
}
