package pptx

import "encoding/xml"

// pSld directly maps the p:sld element, the root of a slide part.
type pSld struct {
	XMLName   xml.Name   `xml:"p:sld"`
	XMLNSa    string     `xml:"xmlns:a,attr"`
	XMLNSr    string     `xml:"xmlns:r,attr"`
	XMLNSp    string     `xml:"xmlns:p,attr"`
	CSld      pCSld      `xml:"p:cSld"`
	ClrMapOvr pClrMapOvr `xml:"p:clrMapOvr"`
}

type pCSld struct {
	Bg     *pBg    `xml:"p:bg"`
	SpTree pSpTree `xml:"p:spTree"`
}

type pClrMapOvr struct {
	MasterClrMapping string `xml:"a:masterClrMapping"`
}

// pBg maps p:bg with an explicit background fill.
type pBg struct {
	BgPr pBgPr `xml:"p:bgPr"`
}

type pBgPr struct {
	SolidFill *aSolidFill `xml:"a:solidFill"`
	EffectLst string      `xml:"a:effectLst"`
}

// pSpTree maps p:spTree. Shapes holds p:sp, p:pic and p:graphicFrame
// values in z-order, which is why it marshals itself.
type pSpTree struct {
	NvGrpSpPr pNvGrpSpPr
	GrpSpPr   pGrpSpPr
	Shapes    []any
}

func (t pSpTree) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(t.NvGrpSpPr, xml.StartElement{Name: xml.Name{Local: "p:nvGrpSpPr"}}); err != nil {
		return err
	}
	if err := e.EncodeElement(t.GrpSpPr, xml.StartElement{Name: xml.Name{Local: "p:grpSpPr"}}); err != nil {
		return err
	}
	for _, shape := range t.Shapes {
		if err := e.Encode(shape); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func newSpTree() pSpTree {
	return pSpTree{
		NvGrpSpPr: pNvGrpSpPr{CNvPr: pCNvPr{ID: 1}},
	}
}

type pNvGrpSpPr struct {
	CNvPr      pCNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr string `xml:"p:cNvGrpSpPr"`
	NvPr       string `xml:"p:nvPr"`
}

type pGrpSpPr struct {
	Xfrm aGroupXfrm `xml:"a:xfrm"`
}

// pCNvPr maps p:cNvPr, the id and name every drawing object carries.
// Name must be present even when empty.
type pCNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// pSp maps p:sp, used for text boxes and preset auto shapes.
type pSp struct {
	XMLName xml.Name `xml:"p:sp"`
	NvSpPr  pNvSpPr  `xml:"p:nvSpPr"`
	SpPr    pSpPr    `xml:"p:spPr"`
	Style   *pStyle  `xml:"p:style"`
	TxBody  *aTxBody `xml:"p:txBody"`
}

type pNvSpPr struct {
	CNvPr   pCNvPr   `xml:"p:cNvPr"`
	CNvSpPr pCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    string   `xml:"p:nvPr"`
}

type pCNvSpPr struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type pSpPr struct {
	Xfrm      *aXfrm      `xml:"a:xfrm"`
	PrstGeom  *aPrstGeom  `xml:"a:prstGeom"`
	NoFill    *struct{}   `xml:"a:noFill"`
	SolidFill *aSolidFill `xml:"a:solidFill"`
	Ln        *aLn        `xml:"a:ln"`
}

// pStyle maps p:style, the theme references that give an auto shape its
// default accent fill and outline.
type pStyle struct {
	LnRef     aStyleRef `xml:"a:lnRef"`
	FillRef   aStyleRef `xml:"a:fillRef"`
	EffectRef aStyleRef `xml:"a:effectRef"`
	FontRef   aFontRef  `xml:"a:fontRef"`
}

type aStyleRef struct {
	Idx       int        `xml:"idx,attr"`
	SchemeClr aSchemeClr `xml:"a:schemeClr"`
}

type aFontRef struct {
	Idx       string     `xml:"idx,attr"`
	SchemeClr aSchemeClr `xml:"a:schemeClr"`
}

func defaultShapeStyle() *pStyle {
	return &pStyle{
		LnRef:     aStyleRef{Idx: 1, SchemeClr: aSchemeClr{Val: "accent1"}},
		FillRef:   aStyleRef{Idx: 3, SchemeClr: aSchemeClr{Val: "accent1"}},
		EffectRef: aStyleRef{Idx: 0, SchemeClr: aSchemeClr{Val: "accent1"}},
		FontRef:   aFontRef{Idx: "minor", SchemeClr: aSchemeClr{Val: "lt1"}},
	}
}

// pPic maps p:pic, an embedded picture.
type pPic struct {
	XMLName  xml.Name  `xml:"p:pic"`
	NvPicPr  pNvPicPr  `xml:"p:nvPicPr"`
	BlipFill pBlipFill `xml:"p:blipFill"`
	SpPr     pSpPr     `xml:"p:spPr"`
}

type pNvPicPr struct {
	CNvPr    pCNvPr    `xml:"p:cNvPr"`
	CNvPicPr pCNvPicPr `xml:"p:cNvPicPr"`
	NvPr     string    `xml:"p:nvPr"`
}

type pCNvPicPr struct {
	PicLocks aPicLocks `xml:"a:picLocks"`
}

type aPicLocks struct {
	NoChangeAspect string `xml:"noChangeAspect,attr"`
}

type pBlipFill struct {
	Blip    aBlip    `xml:"a:blip"`
	Stretch aStretch `xml:"a:stretch"`
}

type aBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type aStretch struct {
	FillRect string `xml:"a:fillRect"`
}

// pGraphicFrame maps p:graphicFrame, the host of tables and charts.
type pGraphicFrame struct {
	XMLName          xml.Name          `xml:"p:graphicFrame"`
	NvGraphicFramePr pNvGraphicFramePr `xml:"p:nvGraphicFramePr"`
	Xfrm             aXfrm             `xml:"p:xfrm"`
	Graphic          aGraphic          `xml:"a:graphic"`
}

type pNvGraphicFramePr struct {
	CNvPr             pCNvPr             `xml:"p:cNvPr"`
	CNvGraphicFramePr pCNvGraphicFramePr `xml:"p:cNvGraphicFramePr"`
	NvPr              string             `xml:"p:nvPr"`
}

type pCNvGraphicFramePr struct {
	Locks *aGraphicFrameLocks `xml:"a:graphicFrameLocks"`
}

type aGraphicFrameLocks struct {
	NoGrp string `xml:"noGrp,attr"`
}

// cChartRef is the c:chart element inside a graphic frame pointing at a
// chart part through a slide relationship.
type cChartRef struct {
	XMLNSc string `xml:"xmlns:c,attr"`
	RID    string `xml:"r:id,attr"`
}
