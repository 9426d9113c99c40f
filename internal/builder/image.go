package builder

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
	"github.com/spf13/afero"
)

func (b *Builder) addImage(slide *pptx.Slide, el deck.Element) error {
	path, err := payloadString("path", el.Path)
	if err != nil || path == "" {
		return err
	}
	opts, err := payloadOptions(el.Options)
	if err != nil {
		return err
	}

	data, err := b.imageBytes(path)
	if err != nil {
		return err
	}

	// Without both w and h the picture keeps its native size.
	r := pptx.Rect{
		X: pptx.Inches(opts.floatOr("x", 1)),
		Y: pptx.Inches(opts.floatOr("y", 1)),
	}
	w, wok := opts.float("w")
	h, hok := opts.float("h")
	if wok && hok && w > 0 && h > 0 {
		r.W, r.H = pptx.Inches(w), pptx.Inches(h)
	}
	return slide.AddPicture(r, data)
}

// imageBytes loads a base64 data URI or a file from the builder's fs.
func (b *Builder) imageBytes(src string) ([]byte, error) {
	if strings.HasPrefix(src, "data:") {
		header, payload, ok := strings.Cut(src, ",")
		if !ok {
			return nil, errors.New("malformed data URI: missing ','")
		}
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("data URI %q is not base64 encoded", header)
		}
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
		if err != nil {
			return nil, fmt.Errorf("decode data URI: %w", err)
		}
		return data, nil
	}

	data, err := afero.ReadFile(b.fs, src)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}
