// Package builder turns a decoded export request into a presentation.
//
// Building is best effort. An element that cannot be rendered is skipped and
// reported as a warning; the rest of the deck is still built.
package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
	"github.com/spf13/afero"
)

// ErrUnknownElementType is wrapped by the warning recorded for an element
// whose type the builder does not know.
var ErrUnknownElementType = errors.New("unknown element type")

// ElementError records one element (or slide background) that was skipped.
// Slide and Element are 1-based; Element is 0 for slide-level failures.
type ElementError struct {
	Slide   int
	Element int
	Type    string
	Err     error
}

func (e *ElementError) Error() string {
	if e.Element == 0 {
		return fmt.Sprintf("slide %d %s: %v", e.Slide, e.Type, e.Err)
	}
	return fmt.Sprintf("slide %d element %d (%s): %v", e.Slide, e.Element, e.Type, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Result is the built deck plus every element that was skipped.
type Result struct {
	Deck     *pptx.Presentation
	Warnings []*ElementError
}

// Builder builds decks. Image paths are read from fs.
type Builder struct {
	fs  afero.Fs
	log *slog.Logger
	now func() time.Time
}

func New(fs afero.Fs, log *slog.Logger) *Builder {
	return &Builder{fs: fs, log: log, now: time.Now}
}

// Build creates one slide per request slide and adds its elements in order.
func (b *Builder) Build(req *deck.ExportRequest) *Result {
	layout, ok := pptx.LayoutByName(req.Options.Layout)
	if !ok {
		layout = pptx.Layout16x9
	}

	p := pptx.New()
	p.SetLayout(layout)
	p.SetCoreProperties(pptx.CoreProperties{
		Title:   req.Options.Title,
		Subject: req.Options.Subject,
		Author:  req.Options.Author,
		Created: b.now(),
	})
	res := &Result{Deck: p}

	b.log.Info("building presentation", "slides", len(req.Slides), "layout", layout.Name)
	for i, sd := range req.Slides {
		slide := p.AddSlide()
		log := b.log.With("slide", i+1)

		if sd.BackgroundColor != "" {
			if err := slide.SetBackground(sd.BackgroundColor); err != nil {
				log.Warn("background not applied", "color", sd.BackgroundColor, "error", err)
				res.Warnings = append(res.Warnings, &ElementError{Slide: i + 1, Type: "background", Err: err})
			}
		}

		for j, el := range sd.Elements {
			err := b.addElement(slide, el)
			if err == nil {
				continue
			}
			typ := el.TypeName()
			if errors.Is(err, ErrUnknownElementType) {
				log.Warn("unknown element type", "element", j+1, "type", typ)
			} else {
				log.Error("element skipped", "element", j+1, "type", typ, "error", err)
			}
			res.Warnings = append(res.Warnings, &ElementError{Slide: i + 1, Element: j + 1, Type: typ, Err: err})
		}
		log.Debug("slide built", "elements", len(sd.Elements), "shapes", slide.ShapeCount())
	}
	return res
}

func (b *Builder) addElement(slide *pptx.Slide, el deck.Element) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	typ, ok := el.Type.(string)
	if !ok && el.Type != nil {
		return fmt.Errorf("%w %v", ErrUnknownElementType, el.Type)
	}
	switch typ {
	case deck.ElementText:
		return b.addText(slide, el)
	case deck.ElementTable:
		return b.addTable(slide, el)
	case deck.ElementChart:
		return b.addChart(slide, el)
	case deck.ElementImage:
		return b.addImage(slide, el)
	case deck.ElementShape:
		return b.addShape(slide, el)
	default:
		return fmt.Errorf("%w %q", ErrUnknownElementType, typ)
	}
}
