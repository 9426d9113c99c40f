// Package deck holds the pptx_export request model and its structural
// validation.
package deck

import "fmt"

// Element types understood by the builder.
const (
	ElementText  = "text"
	ElementTable = "table"
	ElementChart = "chart"
	ElementImage = "image"
	ElementShape = "shape"
)

// Layouts accepted in options.layout.
const (
	Layout16x9    = "16x9"
	Layout16x10   = "16x10"
	Layout4x3     = "4x3"
	DefaultLayout = Layout16x9
)

// DefaultFilename is the base name used when filename is absent.
const DefaultFilename = "output"

// ExportRequest is the decoded argument object of a pptx_export call.
type ExportRequest struct {
	Slides      []Slide             `mapstructure:"slides" validate:"required,min=1,dive"`
	Filename    string              `mapstructure:"filename"`
	Description string              `mapstructure:"description"`
	Options     PresentationOptions `mapstructure:"options"`
}

// PresentationOptions are deck-wide settings and document metadata.
type PresentationOptions struct {
	Layout  string `mapstructure:"layout" validate:"omitempty,oneof=16x9 16x10 4x3"`
	Author  string `mapstructure:"author"`
	Title   string `mapstructure:"title"`
	Subject string `mapstructure:"subject"`
}

type Slide struct {
	BackgroundColor string    `mapstructure:"backgroundColor"`
	Elements        []Element `mapstructure:"elements"`
}

// Element is one visual item. Payloads are kept as decoded JSON so that a
// wrongly typed field fails only its own element; the builder checks types
// when it renders the element.
type Element struct {
	Type      any `mapstructure:"type"`
	Text      any `mapstructure:"text"`
	Rows      any `mapstructure:"rows"`
	ChartType any `mapstructure:"chartType"`
	ChartData any `mapstructure:"chartData"`
	Path      any `mapstructure:"path"`
	ShapeType any `mapstructure:"shapeType"`
	Options   any `mapstructure:"options"`
}

// TypeName returns Type for logs and warnings.
func (e Element) TypeName() string {
	switch t := e.Type.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(e.Type)
}
