package builder

import (
	"strings"

	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
)

var chartKinds = map[string]pptx.ChartKind{
	"bar":      pptx.ChartColumnClustered,
	"line":     pptx.ChartLine,
	"pie":      pptx.ChartPie,
	"area":     pptx.ChartArea,
	"scatter":  pptx.ChartXYScatter,
	"bubble":   pptx.ChartBubble,
	"doughnut": pptx.ChartDoughnut,
	"radar":    pptx.ChartRadar,
	"bar3d":    pptx.ChartColumn3DClustered,
}

// ChartKind resolves a chartType case-insensitively. Unknown names fall
// back to a clustered column chart, the same as "bar".
func ChartKind(name string) pptx.ChartKind {
	if k, ok := chartKinds[strings.ToLower(name)]; ok {
		return k
	}
	return pptx.ChartColumnClustered
}

var geometries = map[string]pptx.Geometry{
	"rectangle":      pptx.GeomRectangle,
	"ellipse":        pptx.GeomEllipse,
	"roundrectangle": pptx.GeomRoundRectangle,
	"triangle":       pptx.GeomTriangle,
	"diamond":        pptx.GeomDiamond,
	"pentagon":       pptx.GeomPentagon,
	"hexagon":        pptx.GeomHexagon,
	"octagon":        pptx.GeomOctagon,
	"star":           pptx.GeomStar,
	"arrow":          pptx.GeomRightArrow,
}

// Geometry resolves a shapeType case-insensitively, defaulting to a
// rectangle.
func Geometry(name string) pptx.Geometry {
	if g, ok := geometries[strings.ToLower(name)]; ok {
		return g
	}
	return pptx.GeomRectangle
}
