package pptx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ChartKind enumerates the chart types the writer can produce.
type ChartKind int

const (
	ChartColumnClustered ChartKind = iota
	ChartLine
	ChartPie
	ChartArea
	ChartXYScatter
	ChartBubble
	ChartDoughnut
	ChartRadar
	ChartColumn3DClustered
)

func (k ChartKind) String() string {
	switch k {
	case ChartColumnClustered:
		return "COLUMN_CLUSTERED"
	case ChartLine:
		return "LINE"
	case ChartPie:
		return "PIE"
	case ChartArea:
		return "AREA"
	case ChartXYScatter:
		return "XY_SCATTER"
	case ChartBubble:
		return "BUBBLE"
	case ChartDoughnut:
		return "DOUGHNUT"
	case ChartRadar:
		return "RADAR"
	case ChartColumn3DClustered:
		return "THREE_D_COLUMN_CLUSTERED"
	}
	return fmt.Sprintf("ChartKind(%d)", int(k))
}

func (k ChartKind) xy() bool {
	return k == ChartXYScatter || k == ChartBubble
}

func (k ChartKind) radial() bool {
	return k == ChartPie || k == ChartDoughnut
}

// Series is one named data series. Sizes is only read by bubble charts.
type Series struct {
	Name   string
	Values []float64
	Sizes  []float64
}

// ChartData is the content of one chart. Categories label the points of
// every series; scatter and bubble charts use them as X values when they
// are all numeric. Legend overrides the default legend visibility.
type ChartData struct {
	Title      string
	Categories []string
	Series     []Series
	Legend     *bool
}

const (
	catAxisID = 500000001
	valAxisID = 500000002

	sheetName = "Sheet1"
)

type chartPart struct {
	number   int
	xml      []byte
	workbook []byte
}

func (c *chartPart) name() string {
	return fmt.Sprintf("chart%d.xml", c.number)
}

func (c *chartPart) workbookName() string {
	return fmt.Sprintf("Microsoft_Excel_Worksheet%d.xlsx", c.number)
}

// AddChart places a chart backed by an embedded workbook.
func (s *Slide) AddChart(kind ChartKind, r Rect, data ChartData) error {
	if err := validRect(r); err != nil {
		return err
	}
	if len(data.Series) == 0 {
		return errors.New("chart has no series")
	}
	points := len(data.Categories)
	if points == 0 {
		for _, ser := range data.Series {
			points = max(points, len(ser.Values))
		}
		if points == 0 {
			return errors.New("chart has no data points")
		}
		data.Categories = make([]string, points)
		for i := range data.Categories {
			data.Categories[i] = strconv.Itoa(i + 1)
		}
	}

	part := &chartPart{number: len(s.pres.charts) + 1}
	xVals := xValues(data.Categories)

	wb, err := chartWorkbook(kind, data, xVals)
	if err != nil {
		return fmt.Errorf("chart workbook: %w", err)
	}
	space := chartSpace(kind, data, xVals)
	body, err := marshalPart(space)
	if err != nil {
		return fmt.Errorf("chart xml: %w", err)
	}
	part.xml = body
	part.workbook = wb
	s.pres.charts = append(s.pres.charts, part)
	rid := s.addRel(relChart, "../charts/"+part.name())

	id := s.nextID()
	s.shapes = append(s.shapes, pGraphicFrame{
		NvGraphicFramePr: pNvGraphicFramePr{
			CNvPr: pCNvPr{ID: id, Name: fmt.Sprintf("Chart %d", id-1)},
		},
		Xfrm: *xfrm(r),
		Graphic: aGraphic{GraphicData: aGraphicData{
			URI:   uriChart,
			Chart: &cChartRef{XMLNSc: nsC, RID: rid},
		}},
	})
	return nil
}

// xValues parses categories as numbers, falling back to 1..n when any
// label is not numeric.
func xValues(categories []string) []float64 {
	out := make([]float64, len(categories))
	for i, c := range categories {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			for j := range out {
				out[j] = float64(j + 1)
			}
			return out
		}
		out[i] = v
	}
	return out
}

// chartWorkbook writes the chart data to Sheet1: categories (or X values)
// in column A from row 2, one series per column from B with its name in
// row 1.
func chartWorkbook(kind ChartKind, data ChartData, xVals []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, cat := range data.Categories {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		var v any = cat
		if kind.xy() {
			v = xVals[i]
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return nil, err
		}
	}
	for col, ser := range data.Series {
		cell, err := excelize.CoordinatesToCellName(col+2, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, ser.Name); err != nil {
			return nil, err
		}
		for row, v := range ser.Values {
			if row >= len(data.Categories) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(col+2, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func chartSpace(kind ChartKind, data ChartData, xVals []float64) cChartSpace {
	space := cChartSpace{
		XMLNSc: nsC,
		XMLNSa: nsA,
		XMLNSr: nsR,
		Chart: cChart{
			PlotArea:     plotArea(kind, data, xVals),
			PlotVisOnly:  attrValBool{Val: true},
			DispBlanksAs: attrValString{Val: "gap"},
		},
		ExternalData: &cExternalData{RID: "rId1"},
	}
	if data.Title != "" {
		space.Chart.Title = &cTitle{Tx: cTx{Rich: &cRich{
			P: []aP{{R: []aR{{RPr: &aRPr{Lang: "en-US"}, T: data.Title}}}},
		}}}
		space.Chart.AutoTitleDeleted = &attrValBool{Val: false}
	} else {
		space.Chart.AutoTitleDeleted = &attrValBool{Val: true}
	}
	if kind == ChartColumn3DClustered {
		space.Chart.View3D = &cView3D{
			RotX:   attrValInt{Val: 15},
			RotY:   attrValInt{Val: 20},
			RAngAx: attrValBool{Val: true},
		}
	}
	showLegend := len(data.Series) > 1 || kind.radial()
	if data.Legend != nil {
		showLegend = *data.Legend
	}
	if showLegend {
		space.Chart.Legend = &cLegend{LegendPos: attrValString{Val: "r"}}
	}
	return space
}

func plotArea(kind ChartKind, data ChartData, xVals []float64) cPlotArea {
	sers := make([]cSer, 0, len(data.Series))
	for i, ser := range data.Series {
		sers = append(sers, seriesXML(kind, i, ser, data.Categories, xVals))
	}
	axes := []attrValInt{{Val: catAxisID}, {Val: valAxisID}}

	var pa cPlotArea
	switch kind {
	case ChartLine:
		pa.LineChart = &cCharts{
			Grouping:   &attrValString{Val: "standard"},
			VaryColors: &attrValBool{},
			Ser:        sers,
			Marker:     &attrValBool{Val: true},
			AxID:       axes,
		}
	case ChartPie:
		pa.PieChart = &cCharts{
			VaryColors:    &attrValBool{Val: true},
			Ser:           sers,
			FirstSliceAng: &attrValInt{},
		}
	case ChartDoughnut:
		pa.DoughnutChart = &cCharts{
			VaryColors:    &attrValBool{Val: true},
			Ser:           sers,
			FirstSliceAng: &attrValInt{},
			HoleSize:      &attrValInt{Val: 50},
		}
	case ChartArea:
		pa.AreaChart = &cCharts{
			Grouping:   &attrValString{Val: "standard"},
			VaryColors: &attrValBool{},
			Ser:        sers,
			AxID:       axes,
		}
	case ChartRadar:
		pa.RadarChart = &cCharts{
			RadarStyle: &attrValString{Val: "marker"},
			VaryColors: &attrValBool{},
			Ser:        sers,
			AxID:       axes,
		}
	case ChartXYScatter:
		pa.ScatterChart = &cCharts{
			ScatterStyle: &attrValString{Val: "lineMarker"},
			VaryColors:   &attrValBool{},
			Ser:          sers,
			AxID:         axes,
		}
	case ChartBubble:
		pa.BubbleChart = &cCharts{
			VaryColors:     &attrValBool{},
			Ser:            sers,
			BubbleScale:    &attrValInt{Val: 100},
			ShowNegBubbles: &attrValBool{},
			AxID:           axes,
		}
	case ChartColumn3DClustered:
		pa.Bar3DChart = &cCharts{
			BarDir:     &attrValString{Val: "col"},
			Grouping:   &attrValString{Val: "clustered"},
			VaryColors: &attrValBool{},
			Ser:        sers,
			GapWidth:   &attrValInt{Val: 150},
			Shape:      &attrValString{Val: "box"},
			AxID:       axes,
		}
	default:
		pa.BarChart = &cCharts{
			BarDir:     &attrValString{Val: "col"},
			Grouping:   &attrValString{Val: "clustered"},
			VaryColors: &attrValBool{},
			Ser:        sers,
			GapWidth:   &attrValInt{Val: 150},
			AxID:       axes,
		}
	}

	switch {
	case kind.radial():
	case kind.xy():
		pa.ValAx = []cAxs{
			valueAxis(catAxisID, valAxisID, "b", false),
			valueAxis(valAxisID, catAxisID, "l", true),
		}
		for i := range pa.ValAx {
			pa.ValAx[i].CrossBetween.Val = "midCat"
		}
	default:
		cat := categoryAxis()
		pa.CatAx = &cat
		pa.ValAx = []cAxs{valueAxis(valAxisID, catAxisID, "l", true)}
	}
	return pa
}

func seriesXML(kind ChartKind, idx int, ser Series, categories []string, xVals []float64) cSer {
	col, _ := excelize.ColumnNumberToName(idx + 2)
	n := len(categories)
	nameRef, _ := excelize.CoordinatesToCellName(idx+2, 1, true)
	s := cSer{
		Idx:   attrValInt{Val: idx},
		Order: attrValInt{Val: idx},
		Tx: &cTx{StrRef: &cStrRef{
			F: sheetName + "!" + nameRef,
			StrCache: cStrCache{
				PtCount: attrValInt{Val: 1},
				Pt:      []cPt{{Idx: 0, V: ser.Name}},
			},
		}},
	}
	values := &cNumRef{
		F:        fmt.Sprintf("%s!$%s$2:$%s$%d", sheetName, col, col, n+1),
		NumCache: numCache(ser.Values, n),
	}

	switch kind {
	case ChartXYScatter, ChartBubble:
		s.XVal = &cCat{NumRef: &cNumRef{
			F:        fmt.Sprintf("%s!$A$2:$A$%d", sheetName, n+1),
			NumCache: numCache(xVals, n),
		}}
		s.YVal = &cVal{NumRef: values}
		if kind == ChartBubble {
			s.InvertIfNegative = &attrValBool{}
			sizes := make([]float64, n)
			for i := range sizes {
				sizes[i] = 1
				if i < len(ser.Sizes) {
					sizes[i] = ser.Sizes[i]
				}
			}
			lit := numCache(sizes, n)
			s.BubbleSize = &cVal{NumLit: &lit}
			s.Bubble3D = &attrValBool{}
		} else {
			s.SpPr = &cSpPr{Ln: &aLn{W: 19050, NoFill: &struct{}{}}}
			s.Smooth = &attrValBool{}
		}
		return s
	case ChartColumnClustered, ChartColumn3DClustered:
		s.InvertIfNegative = &attrValBool{}
	case ChartLine:
		s.Smooth = &attrValBool{}
	}
	s.Cat = &cCat{StrRef: &cStrRef{
		F:        fmt.Sprintf("%s!$A$2:$A$%d", sheetName, n+1),
		StrCache: strCache(categories),
	}}
	s.Val = &cVal{NumRef: values}
	return s
}

func strCache(values []string) cStrCache {
	c := cStrCache{PtCount: attrValInt{Val: len(values)}}
	for i, v := range values {
		c.Pt = append(c.Pt, cPt{Idx: i, V: v})
	}
	return c
}

func numCache(values []float64, n int) cNumCache {
	c := cNumCache{FormatCode: "General", PtCount: attrValInt{Val: n}}
	for i, v := range values {
		if i >= n {
			break
		}
		c.Pt = append(c.Pt, cPt{Idx: i, V: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return c
}

func categoryAxis() cAxs {
	return cAxs{
		AxID:          attrValInt{Val: catAxisID},
		Scaling:       cScaling{Orientation: attrValString{Val: "minMax"}},
		AxPos:         attrValString{Val: "b"},
		NumFmt:        &cNumFmt{FormatCode: "General", SourceLinked: true},
		MajorTickMark: attrValString{Val: "out"},
		MinorTickMark: attrValString{Val: "none"},
		TickLblPos:    attrValString{Val: "nextTo"},
		CrossAx:       attrValInt{Val: valAxisID},
		Crosses:       attrValString{Val: "autoZero"},
		Auto:          &attrValBool{Val: true},
		LblAlgn:       &attrValString{Val: "ctr"},
		LblOffset:     &attrValInt{Val: 100},
		NoMultiLvlLbl: &attrValBool{},
	}
}

func valueAxis(id, cross int, pos string, gridlines bool) cAxs {
	ax := cAxs{
		AxID:          attrValInt{Val: id},
		Scaling:       cScaling{Orientation: attrValString{Val: "minMax"}},
		AxPos:         attrValString{Val: pos},
		NumFmt:        &cNumFmt{FormatCode: "General", SourceLinked: true},
		MajorTickMark: attrValString{Val: "out"},
		MinorTickMark: attrValString{Val: "none"},
		TickLblPos:    attrValString{Val: "nextTo"},
		CrossAx:       attrValInt{Val: cross},
		Crosses:       attrValString{Val: "autoZero"},
		CrossBetween:  &attrValString{Val: "between"},
	}
	if gridlines {
		ax.MajorGridlines = &struct{}{}
	}
	return ax
}
