package pptx

import (
	"fmt"
	"math"
)

// Geometry is a DrawingML preset shape name.
type Geometry string

const (
	GeomRectangle      Geometry = "rect"
	GeomEllipse        Geometry = "ellipse"
	GeomRoundRectangle Geometry = "roundRect"
	GeomTriangle       Geometry = "triangle"
	GeomDiamond        Geometry = "diamond"
	GeomPentagon       Geometry = "pentagon"
	GeomHexagon        Geometry = "hexagon"
	GeomOctagon        Geometry = "octagon"
	GeomStar           Geometry = "star5"
	GeomRightArrow     Geometry = "rightArrow"
)

// ShapeStyle overrides the theme's accent fill and outline. LineWidth is in
// points.
type ShapeStyle struct {
	Fill      string
	Line      string
	LineWidth float64
}

// AddShape places a preset auto shape.
func (s *Slide) AddShape(g Geometry, r Rect, style ShapeStyle) error {
	if err := validRect(r); err != nil {
		return err
	}
	spPr := pSpPr{
		Xfrm:     xfrm(r),
		PrstGeom: &aPrstGeom{Prst: string(g)},
	}
	if style.Fill != "" {
		c, err := normalizeColor(style.Fill)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		spPr.SolidFill = solidFill(c)
	}
	if style.Line != "" || style.LineWidth > 0 {
		ln := &aLn{}
		if style.LineWidth > 0 {
			ln.W = int64(math.Round(style.LineWidth * 12700))
		}
		if style.Line != "" {
			c, err := normalizeColor(style.Line)
			if err != nil {
				return fmt.Errorf("line: %w", err)
			}
			ln.SolidFill = solidFill(c)
		}
		spPr.Ln = ln
	}

	id := s.nextID()
	s.shapes = append(s.shapes, pSp{
		NvSpPr: pNvSpPr{
			CNvPr: pCNvPr{ID: id, Name: fmt.Sprintf("Shape %d", id-1)},
		},
		SpPr:  spPr,
		Style: defaultShapeStyle(),
		TxBody: &aTxBody{
			BodyPr: aBodyPr{RtlCol: "0", Anchor: "ctr"},
			P:      []aP{{PPr: &aPPr{Algn: "ctr"}}},
		},
	})
	return nil
}
