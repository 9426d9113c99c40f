package pptx

// Types in this file map DrawingML (a:) elements shared by slides, tables
// and chart titles. Element order inside each struct follows the schema
// sequence, so fields must not be reordered.

// attrValString maps any element carrying a single string val attribute.
type attrValString struct {
	Val string `xml:"val,attr"`
}

// attrValInt maps any element carrying a single integer val attribute.
type attrValInt struct {
	Val int `xml:"val,attr"`
}

// attrValBool maps any element carrying a single boolean val attribute.
type attrValBool struct {
	Val bool `xml:"val,attr"`
}

type aPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type aSize struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// aXfrm maps a:xfrm (and p:xfrm, which has the same content model).
type aXfrm struct {
	Off aPoint `xml:"a:off"`
	Ext aSize  `xml:"a:ext"`
}

// aGroupXfrm is the transform of a group shape, including the child
// coordinate space.
type aGroupXfrm struct {
	Off   aPoint `xml:"a:off"`
	Ext   aSize  `xml:"a:ext"`
	ChOff aPoint `xml:"a:chOff"`
	ChExt aSize  `xml:"a:chExt"`
}

// aPrstGeom maps a:prstGeom, a preset geometry such as rect or star5.
type aPrstGeom struct {
	Prst  string `xml:"prst,attr"`
	AvLst string `xml:"a:avLst"`
}

type aSchemeClr struct {
	Val string `xml:"val,attr"`
}

// aSolidFill maps a:solidFill. Exactly one colour choice is set.
type aSolidFill struct {
	SrgbClr   *attrValString `xml:"a:srgbClr"`
	SchemeClr *aSchemeClr    `xml:"a:schemeClr"`
}

func solidFill(rgb string) *aSolidFill {
	return &aSolidFill{SrgbClr: &attrValString{Val: rgb}}
}

// aLn maps a:ln, an outline. W is in EMU.
type aLn struct {
	W         int64       `xml:"w,attr,omitempty"`
	NoFill    *struct{}   `xml:"a:noFill"`
	SolidFill *aSolidFill `xml:"a:solidFill"`
}

type aFont struct {
	Typeface string `xml:"typeface,attr"`
}

type aBuChar struct {
	Char string `xml:"char,attr"`
}

// aTxBody maps both p:txBody and a:txBody; the enclosing field tag decides
// the element name.
type aTxBody struct {
	BodyPr   aBodyPr `xml:"a:bodyPr"`
	LstStyle string  `xml:"a:lstStyle"`
	P        []aP    `xml:"a:p"`
}

type aBodyPr struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr,omitempty"`
	Anchor    string    `xml:"anchor,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit"`
}

// aP maps a:p, one paragraph.
type aP struct {
	PPr        *aPPr `xml:"a:pPr"`
	R          []aR  `xml:"a:r"`
	EndParaRPr *aRPr `xml:"a:endParaRPr"`
}

type aPPr struct {
	MarL   int64    `xml:"marL,attr,omitempty"`
	Indent int64    `xml:"indent,attr,omitempty"`
	Algn   string   `xml:"algn,attr,omitempty"`
	BuFont *aFont   `xml:"a:buFont"`
	BuChar *aBuChar `xml:"a:buChar"`
}

// aR maps a:r, one run of uniformly formatted text.
type aR struct {
	RPr *aRPr  `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

// aRPr maps a:rPr. Sz is in hundredths of a point.
type aRPr struct {
	Lang      string      `xml:"lang,attr,omitempty"`
	Sz        int         `xml:"sz,attr,omitempty"`
	B         string      `xml:"b,attr,omitempty"`
	I         string      `xml:"i,attr,omitempty"`
	Dirty     string      `xml:"dirty,attr,omitempty"`
	SolidFill *aSolidFill `xml:"a:solidFill"`
	Latin     *aFont      `xml:"a:latin"`
}

// aGraphic maps a:graphic, the container for tables and charts inside a
// p:graphicFrame.
type aGraphic struct {
	GraphicData aGraphicData `xml:"a:graphicData"`
}

type aGraphicData struct {
	URI   string     `xml:"uri,attr"`
	Tbl   *aTbl      `xml:"a:tbl"`
	Chart *cChartRef `xml:"c:chart"`
}

// aTbl maps a:tbl.
type aTbl struct {
	TblPr   aTblPr   `xml:"a:tblPr"`
	TblGrid aTblGrid `xml:"a:tblGrid"`
	Tr      []aTr    `xml:"a:tr"`
}

type aTblPr struct {
	FirstRow     string `xml:"firstRow,attr,omitempty"`
	BandRow      string `xml:"bandRow,attr,omitempty"`
	TableStyleID string `xml:"a:tableStyleId,omitempty"`
}

type aTblGrid struct {
	GridCol []aGridCol `xml:"a:gridCol"`
}

type aGridCol struct {
	W int64 `xml:"w,attr"`
}

type aTr struct {
	H  int64 `xml:"h,attr"`
	Tc []aTc `xml:"a:tc"`
}

type aTc struct {
	TxBody aTxBody `xml:"a:txBody"`
	TcPr   aTcPr   `xml:"a:tcPr"`
}

type aTcPr struct {
	SolidFill *aSolidFill `xml:"a:solidFill"`
}
