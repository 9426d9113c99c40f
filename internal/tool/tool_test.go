package tool

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/pptx-export-mcp/internal/builder"
	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pipeline"
	"github.com/dgallion1/pptx-export-mcp/internal/publish"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportDir = "/exports"

func newTestHandler(fs afero.Fs) *Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	exp := pipeline.NewExporter(
		builder.New(fs, log),
		publish.NewPublisher(fs, exportDir, log),
		pipeline.NewExportStats(time.Hour),
		log,
	)
	return NewHandler(exp, log)
}

// rpc sends one JSON-RPC request and returns the response decoded as a
// generic map.
func rpc(t *testing.T, s *server.MCPServer, id int, method string, params any) map[string]any {
	t.Helper()
	msg := map[string]any{"jsonrpc": mcp.JSONRPC_VERSION, "id": id, "method": method}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	resp := s.HandleMessage(context.Background(), raw)
	require.NotNil(t, resp)
	out, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	return decoded
}

func callExport(t *testing.T, s *server.MCPServer, args map[string]any) (text string, isError bool) {
	t.Helper()
	resp := rpc(t, s, 2, "tools/call", map[string]any{"name": Name, "arguments": args})
	require.NotContains(t, resp, "error")

	result := resp["result"].(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	text = content[0].(map[string]any)["text"].(string)
	isError, _ = result["isError"].(bool)
	return text, isError
}

func readPart(t *testing.T, fs afero.Fs, filename, part string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(exportDir, filename))
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	f, err := zr.Open(part)
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(b)
}

func TestSchemaIsValidJSON(t *testing.T) {
	var s map[string]any
	require.NoError(t, json.Unmarshal(Schema(), &s))
	assert.Equal(t, []any{"slides"}, s["required"])
}

func TestToolsList(t *testing.T) {
	s := NewMCPServer(newTestHandler(afero.NewMemMapFs()), "test")

	resp := rpc(t, s, 1, "tools/list", nil)
	tools := resp["result"].(map[string]any)["tools"].([]any)
	require.Len(t, tools, 1)

	tool := tools[0].(map[string]any)
	assert.Equal(t, Name, tool["name"])
	assert.Equal(t, Description, tool["description"])
	schema := tool["inputSchema"].(map[string]any)
	assert.Contains(t, schema["properties"], "slides")
}

func TestExportTextSlide(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewMCPServer(newTestHandler(fs), "test")

	text, isError := callExport(t, s, map[string]any{
		"slides": []any{map[string]any{
			"backgroundColor": "F0F0F0",
			"elements": []any{map[string]any{
				"type": "text",
				"text": "Hello",
				"options": map[string]any{
					"x": 1, "y": 1, "w": 8, "h": 1, "fontSize": 24, "bold": true,
				},
			}},
		}},
	})
	require.False(t, isError, text)

	var res publish.Result
	require.NoError(t, json.Unmarshal([]byte(text), &res))
	assert.Equal(t, publish.MIMEType, res.Filetype)
	assert.Equal(t, res.Filename, res.Path)
	assert.Regexp(t, `^output_[0-9a-f-]{36}\.pptx$`, res.Filename)
	assert.Contains(t, text, "\n  \"path\": ")

	info, err := fs.Stat(filepath.Join(exportDir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, publish.FormatSize(int(info.Size())), res.Filesize)

	slide := readPart(t, fs, res.Filename, "ppt/slides/slide1.xml")
	assert.Contains(t, slide, `<a:srgbClr val="F0F0F0">`)
	assert.Contains(t, slide, "<a:t>Hello</a:t>")
}

func TestExportBarChart(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewMCPServer(newTestHandler(fs), "test")

	text, isError := callExport(t, s, map[string]any{
		"filename": "chart deck",
		"slides": []any{map[string]any{
			"elements": []any{map[string]any{
				"type":      "chart",
				"chartType": "BAR",
				"chartData": []any{map[string]any{
					"name": "S1", "labels": []any{"A", "B"}, "values": []any{1, 2},
				}},
			}},
		}},
	})
	require.False(t, isError, text)

	var res publish.Result
	require.NoError(t, json.Unmarshal([]byte(text), &res))
	assert.Regexp(t, `^chart_deck_`, res.Filename)

	chart := readPart(t, fs, res.Filename, "ppt/charts/chart1.xml")
	assert.Contains(t, chart, "<c:barChart>")
	assert.Contains(t, chart, `<c:barDir val="col">`)
	assert.Contains(t, chart, `<c:grouping val="clustered">`)
}

func TestExportInvalidInputIsToolError(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewMCPServer(newTestHandler(fs), "test")

	for _, args := range []map[string]any{
		{"filename": "x"},
		{"slides": map[string]any{}},
		{"slides": []any{}},
	} {
		text, isError := callExport(t, s, args)
		assert.True(t, isError)

		var body ErrorBody
		require.NoError(t, json.Unmarshal([]byte(text), &body))
		assert.False(t, body.Success)
		assert.Contains(t, body.Error, "slide")
	}

	exists, err := afero.DirExists(fs, exportDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExportTableWithoutRowsStillSucceeds(t *testing.T) {
	s := NewMCPServer(newTestHandler(afero.NewMemMapFs()), "test")

	text, isError := callExport(t, s, map[string]any{
		"slides": []any{map[string]any{"elements": []any{
			map[string]any{"type": "table"},
			map[string]any{"type": "shape", "shapeType": "cloud"},
		}}},
	})
	assert.False(t, isError, text)
}

func TestExportMistypedElementKeepsDeck(t *testing.T) {
	for name, bad := range map[string]map[string]any{
		"rows string":      {"type": "table", "rows": "a,b"},
		"numeric chart":    {"type": "chart", "chartType": 5, "chartData": []any{map[string]any{"values": []any{1}}}},
		"numeric type":     {"type": 7},
		"options string":   {"type": "text", "text": "x", "options": "big"},
		"shapeType object": {"type": "shape", "shapeType": map[string]any{"kind": "star"}},
	} {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			s := NewMCPServer(newTestHandler(fs), "test")

			text, isError := callExport(t, s, map[string]any{
				"slides": []any{map[string]any{"elements": []any{
					map[string]any{"type": "text", "text": "Hello"},
					bad,
				}}},
			})
			require.False(t, isError, text)

			var res publish.Result
			require.NoError(t, json.Unmarshal([]byte(text), &res))
			assert.Contains(t, readPart(t, fs, res.Filename, "ppt/slides/slide1.xml"), "<a:t>Hello</a:t>")
		})
	}
}

func TestUnknownToolIsProtocolError(t *testing.T) {
	s := NewMCPServer(newTestHandler(afero.NewMemMapFs()), "test")

	resp := rpc(t, s, 3, "tools/call", map[string]any{"name": "docx_export", "arguments": map[string]any{}})
	require.Contains(t, resp, "error")
	rpcErr := resp["error"].(map[string]any)
	assert.EqualValues(t, mcp.INVALID_PARAMS, rpcErr["code"])
}

func TestHandlerCallUnknownOperation(t *testing.T) {
	h := newTestHandler(afero.NewMemMapFs())
	_, err := h.Call(context.Background(), "xlsx_export", nil)
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestHandlerCallReportsErrorKind(t *testing.T) {
	h := newTestHandler(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	resp, err := h.Call(context.Background(), Name, map[string]any{
		"slides": []any{map[string]any{}},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsError)
	assert.True(t, errors.Is(resp.Err, publish.ErrDirectory))
	assert.False(t, errors.Is(resp.Err, deck.ErrInvalidInput))
	assert.Contains(t, resp.Text(), fmt.Sprintf("%q: false", "success"))
}
