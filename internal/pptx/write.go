package pptx

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

//go:embed templates/*.xml
var templates embed.FS

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// firstSlideID is the lowest id PowerPoint accepts in p:sldIdLst.
const firstSlideID = 256

type part struct {
	name string
	data []byte
}

func marshalPart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), body...), nil
}

// Write serializes the presentation as a PPTX package.
func (p *Presentation) Write(w io.Writer) error {
	parts, err := p.parts()
	if err != nil {
		return err
	}
	zw := zip.NewWriter(w)
	for _, pt := range parts {
		f, err := zw.Create(pt.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", pt.name, err)
		}
		if _, err := f.Write(pt.data); err != nil {
			return fmt.Errorf("write %s: %w", pt.name, err)
		}
	}
	return zw.Close()
}

// Bytes serializes the presentation into memory.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Presentation) parts() ([]part, error) {
	var parts []part
	add := func(name string, v any) error {
		data, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		parts = append(parts, part{name: name, data: data})
		return nil
	}
	addTemplate := func(name, file string) error {
		data, err := templates.ReadFile("templates/" + file)
		if err != nil {
			return err
		}
		parts = append(parts, part{name: name, data: data})
		return nil
	}

	if err := add("[Content_Types].xml", p.contentTypes()); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", xRelationships{Relationships: []xRelationship{
		{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
	}}); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", p.coreXML()); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", xAppProperties{Application: "pptx-export-mcp", Slides: len(p.slides)}); err != nil {
		return nil, err
	}

	presRels := []xRelationship{
		{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		{ID: "rId2", Type: relTheme, Target: "theme/theme1.xml"},
		{ID: "rId3", Type: relPresProps, Target: "presProps.xml"},
		{ID: "rId4", Type: relViewProps, Target: "viewProps.xml"},
		{ID: "rId5", Type: relTableStyles, Target: "tableStyles.xml"},
	}
	pres := pPresentation{
		XMLNSa:          nsA,
		XMLNSr:          nsR,
		XMLNSp:          nsP,
		SaveSubsetFonts: "1",
		SldMasterIDLst:  pSldMasterIDLst{SldMasterID: []pSldMasterID{{ID: 2147483648, RID: "rId1"}}},
		SldSz:           aSize{Cx: p.layout.Width, Cy: p.layout.Height},
		NotesSz:         aSize{Cx: 6858000, Cy: 9144000},
	}
	if len(p.slides) > 0 {
		pres.SldIDLst = &pSldIDLst{}
	}
	for i, s := range p.slides {
		rid := fmt.Sprintf("rId%d", len(presRels)+1)
		presRels = append(presRels, xRelationship{ID: rid, Type: relSlide, Target: fmt.Sprintf("slides/slide%d.xml", s.number)})
		pres.SldIDLst.SldID = append(pres.SldIDLst.SldID, pSldID{ID: firstSlideID + i, RID: rid})
	}
	if err := add("ppt/presentation.xml", pres); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", xRelationships{Relationships: presRels}); err != nil {
		return nil, err
	}

	for _, t := range []struct{ name, file string }{
		{"ppt/presProps.xml", "presProps.xml"},
		{"ppt/viewProps.xml", "viewProps.xml"},
		{"ppt/tableStyles.xml", "tableStyles.xml"},
		{"ppt/theme/theme1.xml", "theme1.xml"},
		{"ppt/slideMasters/slideMaster1.xml", "slideMaster1.xml"},
		{"ppt/slideLayouts/slideLayout1.xml", "slideLayout1.xml"},
	} {
		if err := addTemplate(t.name, t.file); err != nil {
			return nil, err
		}
	}
	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", xRelationships{Relationships: []xRelationship{
		{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	}}); err != nil {
		return nil, err
	}
	if err := add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", xRelationships{Relationships: []xRelationship{
		{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	}}); err != nil {
		return nil, err
	}

	for _, s := range p.slides {
		if err := add(fmt.Sprintf("ppt/slides/slide%d.xml", s.number), s.xml()); err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", s.number), xRelationships{Relationships: s.rels}); err != nil {
			return nil, err
		}
	}
	for _, c := range p.charts {
		parts = append(parts,
			part{name: "ppt/charts/" + c.name(), data: c.xml},
			part{name: "ppt/embeddings/" + c.workbookName(), data: c.workbook},
		)
		if err := add(fmt.Sprintf("ppt/charts/_rels/%s.rels", c.name()), xRelationships{Relationships: []xRelationship{
			{ID: "rId1", Type: relPackage, Target: "../embeddings/" + c.workbookName()},
		}}); err != nil {
			return nil, err
		}
	}
	for _, m := range p.media {
		parts = append(parts, part{name: "ppt/media/" + m.name, data: m.data})
	}
	return parts, nil
}

func (p *Presentation) contentTypes() xContentTypes {
	ct := xContentTypes{
		Defaults: []xDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
			{Extension: "png", ContentType: "image/png"},
			{Extension: "jpeg", ContentType: "image/jpeg"},
			{Extension: "gif", ContentType: "image/gif"},
			{Extension: "xlsx", ContentType: ctWorkbook},
		},
		Overrides: []xOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtendedProps},
		},
	}
	for _, s := range p.slides {
		ct.Overrides = append(ct.Overrides, xOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", s.number),
			ContentType: ctSlide,
		})
	}
	for _, c := range p.charts {
		ct.Overrides = append(ct.Overrides, xOverride{
			PartName:    "/ppt/charts/" + c.name(),
			ContentType: ctChart,
		})
	}
	return ct
}

func (p *Presentation) coreXML() xCoreProperties {
	created := p.props.Created
	if created.IsZero() {
		created = time.Now()
	}
	stamp := created.UTC().Format(time.RFC3339)
	return xCoreProperties{
		XMLNSCp:        "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XMLNSDc:        "http://purl.org/dc/elements/1.1/",
		XMLNSDcterms:   "http://purl.org/dc/terms/",
		XMLNSDcmitype:  "http://purl.org/dc/dcmitype/",
		XMLNSXsi:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          p.props.Title,
		Subject:        p.props.Subject,
		Creator:        p.props.Author,
		LastModifiedBy: p.props.Author,
		Revision:       "1",
		Created:        xW3CDTF{Type: "dcterms:W3CDTF", Value: stamp},
		Modified:       xW3CDTF{Type: "dcterms:W3CDTF", Value: stamp},
	}
}
