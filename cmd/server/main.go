package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/pptx-export-mcp/internal/api"
	"github.com/dgallion1/pptx-export-mcp/internal/builder"
	"github.com/dgallion1/pptx-export-mcp/internal/config"
	"github.com/dgallion1/pptx-export-mcp/internal/pipeline"
	"github.com/dgallion1/pptx-export-mcp/internal/publish"
	"github.com/dgallion1/pptx-export-mcp/internal/tool"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	// stdout carries the MCP stream, so logs always go to stderr.
	log := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	exporter := pipeline.NewExporter(
		builder.New(fs, log),
		publish.NewPublisher(fs, publish.DefaultExportDir, log),
		pipeline.NewExportStats(time.Hour),
		log,
	)
	tools := tool.NewHandler(exporter, log)

	switch cfg.Transport {
	case config.TransportHTTP:
		err = serveHTTP(ctx, cfg, tools, log)
	default:
		log.Info("starting pptx-export-mcp on stdio", "version", version, "export_dir", publish.DefaultExportDir)
		srv := tool.NewMCPServer(tools, version)
		err = tool.ServeStdio(ctx, srv, os.Stdin, os.Stdout, slog.NewLogLogger(log.Handler(), slog.LevelError))
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func serveHTTP(ctx context.Context, cfg config.Config, tools *tool.Handler, log *slog.Logger) error {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewServer(tools, log, cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting pptx-export-mcp", "port", cfg.Port, "version", version, "export_dir", publish.DefaultExportDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func newLogger(c config.LogConfig, w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
