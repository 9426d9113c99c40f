// Package pptx writes PowerPoint (PresentationML) documents.
//
// A Presentation is built in memory, one Slide at a time, and serialized
// with Write. Positions and sizes are in EMU; use Inches to convert.
package pptx

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// EMUPerInch is the number of English Metric Units in one inch.
const EMUPerInch = 914400

// emuPerPixel assumes 96 DPI when sizing images natively.
const emuPerPixel = 9525

// Inches converts a length in inches to EMU.
func Inches(v float64) int64 {
	return int64(math.Round(v * EMUPerInch))
}

// Rect is a position and size in EMU.
type Rect struct {
	X, Y, W, H int64
}

// Layout is a named slide size.
type Layout struct {
	Name   string
	Width  int64
	Height int64
}

var (
	Layout16x9  = Layout{Name: "16x9", Width: Inches(13.33), Height: Inches(7.5)}
	Layout16x10 = Layout{Name: "16x10", Width: Inches(13.33), Height: Inches(8.5)}
	Layout4x3   = Layout{Name: "4x3", Width: Inches(10), Height: Inches(7.5)}
)

// LayoutByName returns the layout registered under name.
func LayoutByName(name string) (Layout, bool) {
	switch name {
	case Layout16x9.Name:
		return Layout16x9, true
	case Layout16x10.Name:
		return Layout16x10, true
	case Layout4x3.Name:
		return Layout4x3, true
	}
	return Layout{}, false
}

// CoreProperties is the document metadata written to docProps/core.xml.
type CoreProperties struct {
	Title   string
	Subject string
	Author  string
	Created time.Time
}

// Presentation is an in-memory deck.
type Presentation struct {
	layout Layout
	props  CoreProperties
	slides []*Slide
	media  []*mediaPart
	charts []*chartPart
}

// New creates an empty 16x9 presentation.
func New() *Presentation {
	return &Presentation{layout: Layout16x9}
}

func (p *Presentation) SetLayout(l Layout) {
	p.layout = l
}

func (p *Presentation) Layout() Layout {
	return p.layout
}

func (p *Presentation) SetCoreProperties(props CoreProperties) {
	p.props = props
}

func (p *Presentation) CoreProperties() CoreProperties {
	return p.props
}

// Slides returns the slides in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// AddSlide appends a blank slide.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{
		pres:   p,
		number: len(p.slides) + 1,
		lastID: 1,
	}
	s.addRel(relSlideLayout, "../slideLayouts/slideLayout1.xml")
	p.slides = append(p.slides, s)
	return s
}

// Slide is one slide of a Presentation. Shapes are stacked in the order
// they are added.
type Slide struct {
	pres       *Presentation
	number     int
	background string
	shapes     []any
	rels       []xRelationship
	lastID     int
}

// Number is the 1-based position of the slide in its presentation.
func (s *Slide) Number() int {
	return s.number
}

// ShapeCount reports how many drawing objects the slide holds.
func (s *Slide) ShapeCount() int {
	return len(s.shapes)
}

// SetBackground sets a solid background colour given as six hex digits,
// with or without a leading '#'.
func (s *Slide) SetBackground(color string) error {
	c, err := normalizeColor(color)
	if err != nil {
		return err
	}
	s.background = c
	return nil
}

func (s *Slide) nextID() int {
	s.lastID++
	return s.lastID
}

func (s *Slide) addRel(typ, target string) string {
	id := fmt.Sprintf("rId%d", len(s.rels)+1)
	s.rels = append(s.rels, xRelationship{ID: id, Type: typ, Target: target})
	return id
}

func (s *Slide) xml() pSld {
	sld := pSld{
		XMLNSa: nsA,
		XMLNSr: nsR,
		XMLNSp: nsP,
		CSld:   pCSld{SpTree: newSpTree()},
	}
	if s.background != "" {
		sld.CSld.Bg = &pBg{BgPr: pBgPr{SolidFill: solidFill(s.background)}}
	}
	sld.CSld.SpTree.Shapes = s.shapes
	return sld
}

// normalizeColor accepts "RRGGBB" or "#RRGGBB" and returns upper-case hex.
func normalizeColor(color string) (string, error) {
	c := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	if len(c) != 6 {
		return "", fmt.Errorf("invalid color %q: want six hex digits", color)
	}
	for _, r := range c {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
			return "", fmt.Errorf("invalid color %q: want six hex digits", color)
		}
	}
	return c, nil
}

func xfrm(r Rect) *aXfrm {
	return &aXfrm{
		Off: aPoint{X: r.X, Y: r.Y},
		Ext: aSize{Cx: r.W, Cy: r.H},
	}
}

func validRect(r Rect) error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("invalid size %dx%d EMU", r.W, r.H)
	}
	return nil
}
