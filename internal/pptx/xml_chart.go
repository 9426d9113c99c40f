package pptx

import "encoding/xml"

// cChartSpace directly maps the c:chartSpace element, the root of a chart
// part.
type cChartSpace struct {
	XMLName        xml.Name       `xml:"c:chartSpace"`
	XMLNSc         string         `xml:"xmlns:c,attr"`
	XMLNSa         string         `xml:"xmlns:a,attr"`
	XMLNSr         string         `xml:"xmlns:r,attr"`
	Date1904       attrValBool    `xml:"c:date1904"`
	RoundedCorners attrValBool    `xml:"c:roundedCorners"`
	Chart          cChart         `xml:"c:chart"`
	ExternalData   *cExternalData `xml:"c:externalData"`
}

// cExternalData links the chart to its embedded workbook.
type cExternalData struct {
	RID        string      `xml:"r:id,attr"`
	AutoUpdate attrValBool `xml:"c:autoUpdate"`
}

type cChart struct {
	Title            *cTitle       `xml:"c:title"`
	AutoTitleDeleted *attrValBool  `xml:"c:autoTitleDeleted"`
	View3D           *cView3D      `xml:"c:view3D"`
	PlotArea         cPlotArea     `xml:"c:plotArea"`
	Legend           *cLegend      `xml:"c:legend"`
	PlotVisOnly      attrValBool   `xml:"c:plotVisOnly"`
	DispBlanksAs     attrValString `xml:"c:dispBlanksAs"`
}

type cTitle struct {
	Tx      cTx         `xml:"c:tx"`
	Overlay attrValBool `xml:"c:overlay"`
}

// cTx maps c:tx. Titles use rich text; series names use a cell reference.
type cTx struct {
	Rich   *cRich   `xml:"c:rich"`
	StrRef *cStrRef `xml:"c:strRef"`
}

type cRich struct {
	BodyPr   string `xml:"a:bodyPr"`
	LstStyle string `xml:"a:lstStyle"`
	P        []aP   `xml:"a:p"`
}

type cView3D struct {
	RotX   attrValInt  `xml:"c:rotX"`
	RotY   attrValInt  `xml:"c:rotY"`
	RAngAx attrValBool `xml:"c:rAngAx"`
}

// cPlotArea maps c:plotArea. Exactly one chart group is set per part.
type cPlotArea struct {
	Layout        string   `xml:"c:layout"`
	BarChart      *cCharts `xml:"c:barChart"`
	Bar3DChart    *cCharts `xml:"c:bar3DChart"`
	LineChart     *cCharts `xml:"c:lineChart"`
	PieChart      *cCharts `xml:"c:pieChart"`
	DoughnutChart *cCharts `xml:"c:doughnutChart"`
	AreaChart     *cCharts `xml:"c:areaChart"`
	RadarChart    *cCharts `xml:"c:radarChart"`
	ScatterChart  *cCharts `xml:"c:scatterChart"`
	BubbleChart   *cCharts `xml:"c:bubbleChart"`
	CatAx         *cAxs    `xml:"c:catAx"`
	ValAx         []cAxs   `xml:"c:valAx"`
}

// cCharts is the union of every chart group element used here. Each group
// type only sets the fields its schema sequence allows, and the field order
// is a superset of all of those sequences.
type cCharts struct {
	RadarStyle     *attrValString `xml:"c:radarStyle"`
	ScatterStyle   *attrValString `xml:"c:scatterStyle"`
	BarDir         *attrValString `xml:"c:barDir"`
	Grouping       *attrValString `xml:"c:grouping"`
	VaryColors     *attrValBool   `xml:"c:varyColors"`
	Ser            []cSer         `xml:"c:ser"`
	GapWidth       *attrValInt    `xml:"c:gapWidth"`
	Shape          *attrValString `xml:"c:shape"`
	Marker         *attrValBool   `xml:"c:marker"`
	FirstSliceAng  *attrValInt    `xml:"c:firstSliceAng"`
	HoleSize       *attrValInt    `xml:"c:holeSize"`
	BubbleScale    *attrValInt    `xml:"c:bubbleScale"`
	ShowNegBubbles *attrValBool   `xml:"c:showNegBubbles"`
	AxID           []attrValInt   `xml:"c:axId"`
}

// cSer is the union of the series element of every chart group, ordered
// the same way as cCharts.
type cSer struct {
	Idx              attrValInt   `xml:"c:idx"`
	Order            attrValInt   `xml:"c:order"`
	Tx               *cTx         `xml:"c:tx"`
	SpPr             *cSpPr       `xml:"c:spPr"`
	InvertIfNegative *attrValBool `xml:"c:invertIfNegative"`
	Cat              *cCat        `xml:"c:cat"`
	Val              *cVal        `xml:"c:val"`
	XVal             *cCat        `xml:"c:xVal"`
	YVal             *cVal        `xml:"c:yVal"`
	BubbleSize       *cVal        `xml:"c:bubbleSize"`
	Smooth           *attrValBool `xml:"c:smooth"`
	Bubble3D         *attrValBool `xml:"c:bubble3D"`
}

type cSpPr struct {
	Ln *aLn `xml:"a:ln"`
}

type cCat struct {
	StrRef *cStrRef `xml:"c:strRef"`
	NumRef *cNumRef `xml:"c:numRef"`
}

type cVal struct {
	NumRef *cNumRef   `xml:"c:numRef"`
	NumLit *cNumCache `xml:"c:numLit"`
}

type cStrRef struct {
	F        string    `xml:"c:f"`
	StrCache cStrCache `xml:"c:strCache"`
}

type cStrCache struct {
	PtCount attrValInt `xml:"c:ptCount"`
	Pt      []cPt      `xml:"c:pt"`
}

type cNumRef struct {
	F        string    `xml:"c:f"`
	NumCache cNumCache `xml:"c:numCache"`
}

type cNumCache struct {
	FormatCode string     `xml:"c:formatCode"`
	PtCount    attrValInt `xml:"c:ptCount"`
	Pt         []cPt      `xml:"c:pt"`
}

type cPt struct {
	Idx int    `xml:"idx,attr"`
	V   string `xml:"c:v"`
}

// cAxs maps both c:catAx and c:valAx. Auto, LblAlgn, LblOffset and
// NoMultiLvlLbl are category axis only; CrossBetween is value axis only.
type cAxs struct {
	AxID           attrValInt     `xml:"c:axId"`
	Scaling        cScaling       `xml:"c:scaling"`
	Delete         attrValBool    `xml:"c:delete"`
	AxPos          attrValString  `xml:"c:axPos"`
	MajorGridlines *struct{}      `xml:"c:majorGridlines"`
	NumFmt         *cNumFmt       `xml:"c:numFmt"`
	MajorTickMark  attrValString  `xml:"c:majorTickMark"`
	MinorTickMark  attrValString  `xml:"c:minorTickMark"`
	TickLblPos     attrValString  `xml:"c:tickLblPos"`
	CrossAx        attrValInt     `xml:"c:crossAx"`
	Crosses        attrValString  `xml:"c:crosses"`
	CrossBetween   *attrValString `xml:"c:crossBetween"`
	Auto           *attrValBool   `xml:"c:auto"`
	LblAlgn        *attrValString `xml:"c:lblAlgn"`
	LblOffset      *attrValInt    `xml:"c:lblOffset"`
	NoMultiLvlLbl  *attrValBool   `xml:"c:noMultiLvlLbl"`
}

type cScaling struct {
	Orientation attrValString `xml:"c:orientation"`
}

type cNumFmt struct {
	FormatCode   string `xml:"formatCode,attr"`
	SourceLinked bool   `xml:"sourceLinked,attr"`
}

type cLegend struct {
	LegendPos attrValString `xml:"c:legendPos"`
	Overlay   attrValBool   `xml:"c:overlay"`
}
