package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/dgallion1/pptx-export-mcp/internal/builder"
	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/publish"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportDir = "/exports"

var artifactName = regexp.MustCompile(`^[A-Za-z0-9_-]+_[0-9a-f-]{36}\.pptx$`)

func newTestExporter(fs afero.Fs) *Exporter {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExporter(
		builder.New(fs, log),
		publish.NewPublisher(fs, exportDir, log),
		NewExportStats(time.Hour),
		log,
	)
}

func helloArgs(filename string) map[string]any {
	return map[string]any{
		"filename": filename,
		"slides": []any{
			map[string]any{
				"backgroundColor": "F0F0F0",
				"elements": []any{
					map[string]any{
						"type": "text",
						"text": "Hello",
						"options": map[string]any{
							"x": 1.0, "y": 1.0, "w": 8.0, "h": 1.0,
							"fontSize": 24.0, "bold": true,
						},
					},
				},
			},
		},
	}
}

func TestExportWritesArtifact(t *testing.T) {
	fs := afero.NewMemMapFs()
	e := newTestExporter(fs)

	out, err := e.Export(context.Background(), helloArgs("quarterly review"))
	require.NoError(t, err)

	res := out.Result
	assert.Regexp(t, artifactName, res.Filename)
	assert.Equal(t, res.Filename, res.Path)
	assert.Equal(t, publish.MIMEType, res.Filetype)
	assert.Regexp(t, `^quarterly_review_`, res.Filename)
	assert.Equal(t, 1, out.Slides)
	assert.Equal(t, deck.Layout16x9, out.Layout)
	assert.Empty(t, out.Warnings)

	info, err := fs.Stat(filepath.Join(exportDir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, publish.FormatSize(int(info.Size())), res.Filesize)

	assert.Equal(t, 1, e.Stats().Snapshot().Count)
}

func TestExportLogsDescription(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	fs := afero.NewMemMapFs()
	e := NewExporter(builder.New(fs, log), publish.NewPublisher(fs, exportDir, log), NewExportStats(time.Hour), log)

	args := helloArgs("board")
	args["description"] = "numbers for the board"
	_, err := e.Export(context.Background(), args)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"export complete"`)
	assert.Contains(t, buf.String(), `"description":"numbers for the board"`)
}

func TestExportRecordsStats(t *testing.T) {
	fs := afero.NewMemMapFs()
	e := newTestExporter(fs)

	out, err := e.Export(context.Background(), helloArgs("first"))
	require.NoError(t, err)
	_, err = e.Export(context.Background(), map[string]any{
		"slides": []any{
			map[string]any{"elements": []any{map[string]any{"type": "video"}}},
			map[string]any{},
		},
	})
	require.NoError(t, err)

	info, err := fs.Stat(filepath.Join(exportDir, out.Result.Filename))
	require.NoError(t, err)

	snap := e.Stats().Snapshot()
	assert.Equal(t, 2, snap.Count)
	assert.Equal(t, 3, snap.Slides)
	assert.Equal(t, 1, snap.Warnings)
	assert.Equal(t, 1, snap.Partial)
	assert.GreaterOrEqual(t, snap.MaxBytes, int(info.Size()))
}

func TestExportRejectsInvalidInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	e := newTestExporter(fs)

	for _, args := range []map[string]any{
		{},
		{"slides": "nope"},
		{"slides": []any{}},
	} {
		_, err := e.Export(context.Background(), args)
		require.Error(t, err)
		assert.True(t, errors.Is(err, deck.ErrInvalidInput), err)
	}

	exists, err := afero.DirExists(fs, exportDir)
	require.NoError(t, err)
	assert.False(t, exists, "nothing should be written for invalid input")
	assert.Equal(t, 0, e.Stats().Snapshot().Count)
}

func TestExportKeepsGoingPastBadElements(t *testing.T) {
	e := newTestExporter(afero.NewMemMapFs())

	out, err := e.Export(context.Background(), map[string]any{
		"slides": []any{
			map[string]any{"elements": []any{
				map[string]any{"type": "table"},
				map[string]any{"type": "hologram"},
				map[string]any{"type": "table", "rows": []any{"bad row"}},
				map[string]any{"type": "shape", "shapeType": "star"},
			}},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^output_`, out.Result.Filename)
	require.Len(t, out.Warnings, 2)
	assert.True(t, errors.Is(out.Warnings[0], builder.ErrUnknownElementType))
	assert.Equal(t, 3, out.Warnings[1].Element)
}

func TestExportMistypedPayloadIsAWarning(t *testing.T) {
	tests := []struct {
		name    string
		bad     map[string]any
		unknown bool
	}{
		{"rows", map[string]any{"type": "table", "rows": "a,b"}, false},
		{"chartType", map[string]any{"type": "chart", "chartType": 5.0, "chartData": []any{}}, false},
		{"type", map[string]any{"type": 7.0}, true},
		{"options", map[string]any{"type": "text", "text": "x", "options": "big"}, false},
		{"path", map[string]any{"type": "image", "path": []any{"a.png"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExporter(afero.NewMemMapFs())

			out, err := e.Export(context.Background(), map[string]any{
				"slides": []any{map[string]any{"elements": []any{
					map[string]any{"type": "text", "text": "Hello"},
					tt.bad,
				}}},
			})
			require.NoError(t, err)
			require.Len(t, out.Warnings, 1)
			w := out.Warnings[0]
			assert.Equal(t, 1, w.Slide)
			assert.Equal(t, 2, w.Element)
			assert.Equal(t, tt.unknown, errors.Is(w, builder.ErrUnknownElementType), w.Error())
			assert.Equal(t, 1, e.Stats().Snapshot().Count)
		})
	}
}

func TestExportDirectoryError(t *testing.T) {
	e := newTestExporter(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	_, err := e.Export(context.Background(), helloArgs("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, publish.ErrDirectory), err)
	assert.Equal(t, 0, e.Stats().Snapshot().Count)
}

func TestExportCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExporter(afero.NewMemMapFs()).Export(ctx, helloArgs("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportSameFilenameNeverCollides(t *testing.T) {
	fs := afero.NewMemMapFs()
	e := newTestExporter(fs)

	const n = 8
	names := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := e.Export(context.Background(), helloArgs("same"))
			if assert.NoError(t, err) {
				names[i] = out.Result.Filename
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, name := range names {
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
	}
	entries, err := afero.ReadDir(fs, exportDir)
	require.NoError(t, err)
	assert.Len(t, entries, n)
}
