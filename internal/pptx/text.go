package pptx

import (
	"fmt"
	"math"
)

// Run is a span of text with uniform formatting. Size is in points; zero
// inherits the default size. Color is six hex digits.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   float64
	Color  string
	Font   string
}

// Paragraph is one line-broken block of runs.
type Paragraph struct {
	Runs   []Run
	Align  string // left, center, right or justify
	Bullet bool
}

var alignments = map[string]string{
	"left":    "l",
	"center":  "ctr",
	"right":   "r",
	"justify": "just",
}

// AddTextBox places a word-wrapped text box.
func (s *Slide) AddTextBox(r Rect, paras []Paragraph) error {
	if err := validRect(r); err != nil {
		return err
	}
	ps, err := paragraphsXML(paras)
	if err != nil {
		return err
	}
	id := s.nextID()
	s.shapes = append(s.shapes, pSp{
		NvSpPr: pNvSpPr{
			CNvPr:   pCNvPr{ID: id, Name: fmt.Sprintf("TextBox %d", id-1)},
			CNvSpPr: pCNvSpPr{TxBox: "1"},
		},
		SpPr: pSpPr{
			Xfrm:     xfrm(r),
			PrstGeom: &aPrstGeom{Prst: "rect"},
			NoFill:   &struct{}{},
		},
		TxBody: &aTxBody{
			BodyPr: aBodyPr{Wrap: "square", RtlCol: "0"},
			P:      ps,
		},
	})
	return nil
}

func paragraphsXML(paras []Paragraph) ([]aP, error) {
	if len(paras) == 0 {
		return []aP{{}}, nil
	}
	out := make([]aP, 0, len(paras))
	for _, para := range paras {
		p, err := paragraphXML(para)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func paragraphXML(para Paragraph) (aP, error) {
	var p aP
	if para.Align != "" || para.Bullet {
		p.PPr = &aPPr{Algn: alignments[para.Align]}
		if para.Bullet {
			p.PPr.MarL = 285750
			p.PPr.Indent = -285750
			p.PPr.BuFont = &aFont{Typeface: "Arial"}
			p.PPr.BuChar = &aBuChar{Char: "•"}
		}
	}
	for _, run := range para.Runs {
		rpr, err := runProperties(run)
		if err != nil {
			return aP{}, err
		}
		p.R = append(p.R, aR{RPr: rpr, T: run.Text})
	}
	return p, nil
}

func runProperties(run Run) (*aRPr, error) {
	rpr := &aRPr{Lang: "en-US", Dirty: "0"}
	if run.Size > 0 {
		rpr.Sz = int(math.Round(run.Size * 100))
	}
	if run.Bold {
		rpr.B = "1"
	}
	if run.Italic {
		rpr.I = "1"
	}
	if run.Color != "" {
		c, err := normalizeColor(run.Color)
		if err != nil {
			return nil, err
		}
		rpr.SolidFill = solidFill(c)
	}
	if run.Font != "" {
		rpr.Latin = &aFont{Typeface: run.Font}
	}
	return rpr, nil
}
