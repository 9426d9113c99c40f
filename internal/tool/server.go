package tool

import (
	"context"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the MCP server name announced on initialize.
const ServerName = "pptx-export-mcp"

// Definition is the MCP tool advertised by tools/list.
func Definition() mcp.Tool {
	return mcp.NewToolWithRawSchema(Name, Description, Schema())
}

// NewMCPServer registers the export tool on a new MCP server. Unknown tool
// names are rejected by mcp-go itself as a JSON-RPC error.
func NewMCPServer(h *Handler, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(Definition(), h.mcpHandler)
	return s
}

func (h *Handler) mcpHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.Call(ctx, req.Params.Name, req.GetArguments())
	if err != nil {
		return nil, err
	}
	if resp.IsError {
		return mcp.NewToolResultError(resp.Text()), nil
	}
	return mcp.NewToolResultText(resp.Text()), nil
}

// ServeStdio serves s over in/out until ctx is done or in is closed. Tool
// calls run on a single worker so exports never overlap.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, errLog *log.Logger) error {
	stdio := server.NewStdioServer(s)
	server.WithWorkerPoolSize(1)(stdio)
	if errLog != nil {
		stdio.SetErrorLogger(errLog)
	}
	return stdio.Listen(ctx, in, out)
}
