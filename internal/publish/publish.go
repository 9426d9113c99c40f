// Package publish persists generated presentations under the export
// directory and describes the written artifact.
package publish

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	// DefaultExportDir is where every artifact is written.
	DefaultExportDir = "/tmp/protex-intelligence-file-exports"

	Extension = ".pptx"
	MIMEType  = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

var (
	// ErrDirectory means the export directory could not be created.
	ErrDirectory = errors.New("export directory unavailable")
	// ErrWrite means the artifact could not be written.
	ErrWrite = errors.New("write artifact")
)

// Result describes a published artifact. Path and Filename are both the
// final file name; the directory is never reported.
type Result struct {
	Path     string `json:"path"`
	Filetype string `json:"filetype"`
	Filename string `json:"filename"`
	Filesize string `json:"filesize"`
}

// Publisher writes artifacts into a single directory of an afero.Fs.
type Publisher struct {
	fs    afero.Fs
	dir   string
	log   *slog.Logger
	newID func() string
}

func NewPublisher(fs afero.Fs, dir string, log *slog.Logger) *Publisher {
	return &Publisher{
		fs:    fs,
		dir:   dir,
		log:   log,
		newID: uuid.NewString,
	}
}

// Dir returns the export directory.
func (p *Publisher) Dir() string {
	return p.dir
}

// Publish writes content as <sanitized base>_<uuid>.pptx. An empty base
// yields _<uuid>.pptx.
func (p *Publisher) Publish(content []byte, base string) (Result, error) {
	filename := fmt.Sprintf("%s_%s%s", SanitizeFilename(base), p.newID(), Extension)
	log := p.log.With("filename", filename)

	if err := p.ensureDir(); err != nil {
		return Result{}, err
	}

	full := filepath.Join(p.dir, filename)
	if err := afero.WriteFile(p.fs, full, content, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w %s: %v", ErrWrite, filename, err)
	}

	size := FormatSize(len(content))
	log.Info("file written", "size", size, "bytes", len(content))
	return Result{
		Path:     filename,
		Filetype: MIMEType,
		Filename: filename,
		Filesize: size,
	}, nil
}

func (p *Publisher) ensureDir() error {
	exists, err := afero.DirExists(p.fs, p.dir)
	if err == nil && exists {
		p.log.Debug("export directory exists", "dir", p.dir)
		return nil
	}
	if err := p.fs.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDirectory, p.dir, err)
	}
	p.log.Info("created export directory", "dir", p.dir)
	return nil
}

// SanitizeFilename replaces every rune outside [A-Za-z0-9_-] with '_'.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, name)
}

// FormatSize renders a byte count as whole KB (rounded to nearest, at least
// 1) below one MB and as MB with two decimals from there on.
func FormatSize(n int) string {
	kb := float64(n) / 1024
	if kb < 1024 {
		return fmt.Sprintf("%.0f KB", max(kb, 1))
	}
	return fmt.Sprintf("%.2f MB", kb/1024)
}
