package pptx

import "encoding/xml"

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsC = "http://schemas.openxmlformats.org/drawingml/2006/chart"

	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
	uriChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// Relationship types.
const (
	relOfficeDocument = nsR + "/officeDocument"
	relExtendedProps  = nsR + "/extended-properties"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relSlide          = nsR + "/slide"
	relSlideLayout    = nsR + "/slideLayout"
	relSlideMaster    = nsR + "/slideMaster"
	relTheme          = nsR + "/theme"
	relPresProps      = nsR + "/presProps"
	relViewProps      = nsR + "/viewProps"
	relTableStyles    = nsR + "/tableStyles"
	relImage          = nsR + "/image"
	relChart          = nsR + "/chart"
	relPackage        = nsR + "/package"
)

// Content types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctChart         = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// xContentTypes maps [Content_Types].xml.
type xContentTypes struct {
	XMLName   xml.Name    `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// xRelationships maps a .rels part.
type xRelationships struct {
	XMLName       xml.Name        `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// pPresentation directly maps the p:presentation element.
type pPresentation struct {
	XMLName         xml.Name        `xml:"p:presentation"`
	XMLNSa          string          `xml:"xmlns:a,attr"`
	XMLNSr          string          `xml:"xmlns:r,attr"`
	XMLNSp          string          `xml:"xmlns:p,attr"`
	SaveSubsetFonts string          `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  pSldMasterIDLst `xml:"p:sldMasterIdLst"`
	SldIDLst        *pSldIDLst      `xml:"p:sldIdLst"`
	SldSz           aSize           `xml:"p:sldSz"`
	NotesSz         aSize           `xml:"p:notesSz"`
}

type pSldMasterIDLst struct {
	SldMasterID []pSldMasterID `xml:"p:sldMasterId"`
}

type pSldMasterID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type pSldIDLst struct {
	SldID []pSldID `xml:"p:sldId"`
}

type pSldID struct {
	ID  int    `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// xCoreProperties maps docProps/core.xml.
type xCoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XMLNSCp        string   `xml:"xmlns:cp,attr"`
	XMLNSDc        string   `xml:"xmlns:dc,attr"`
	XMLNSDcterms   string   `xml:"xmlns:dcterms,attr"`
	XMLNSDcmitype  string   `xml:"xmlns:dcmitype,attr"`
	XMLNSXsi       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       string   `xml:"cp:revision"`
	Created        xW3CDTF  `xml:"dcterms:created"`
	Modified       xW3CDTF  `xml:"dcterms:modified"`
}

type xW3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// xAppProperties maps docProps/app.xml.
type xAppProperties struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
}
