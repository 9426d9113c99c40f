package builder

import (
	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
)

func (b *Builder) addShape(slide *pptx.Slide, el deck.Element) error {
	shapeType, err := payloadString("shapeType", el.ShapeType)
	if err != nil || shapeType == "" {
		return err
	}
	opts, err := payloadOptions(el.Options)
	if err != nil {
		return err
	}
	style := pptx.ShapeStyle{
		Fill:      opts.str("fill"),
		Line:      opts.str("line"),
		LineWidth: opts.floatOr("lineWidth", 0),
	}
	// line may also be given as {color, width}.
	if line := opts.nested("line"); line != nil {
		style.Line = line.str("color")
		style.LineWidth = line.floatOr("width", style.LineWidth)
	}
	return slide.AddShape(Geometry(shapeType), opts.rect(shapeBox), style)
}
