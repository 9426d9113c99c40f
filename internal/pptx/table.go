package pptx

import (
	"errors"
	"fmt"
	"math"
)

// mediumStyle2Accent1 is the built-in table style PowerPoint applies to new
// tables.
const mediumStyle2Accent1 = "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"

// Cell is one table cell. Size is in points; Fill and Color are hex.
type Cell struct {
	Text   string
	Bold   bool
	Italic bool
	Size   float64
	Color  string
	Fill   string
}

// AddTable places a table whose column count is the length of the first
// row. Shorter rows are padded with empty cells and longer rows are cut.
func (s *Slide) AddTable(r Rect, rows [][]Cell) error {
	if err := validRect(r); err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("table has no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return errors.New("table has no columns")
	}

	tbl := &aTbl{
		TblPr: aTblPr{FirstRow: "1", BandRow: "1", TableStyleID: mediumStyle2Accent1},
	}
	colW := r.W / int64(cols)
	for range cols {
		tbl.TblGrid.GridCol = append(tbl.TblGrid.GridCol, aGridCol{W: colW})
	}
	rowH := r.H / int64(len(rows))
	for i, row := range rows {
		tr := aTr{H: rowH}
		for c := range cols {
			var cell Cell
			if c < len(row) {
				cell = row[c]
			}
			tc, err := cellXML(cell)
			if err != nil {
				return fmt.Errorf("row %d column %d: %w", i, c, err)
			}
			tr.Tc = append(tr.Tc, tc)
		}
		tbl.Tr = append(tbl.Tr, tr)
	}

	id := s.nextID()
	s.shapes = append(s.shapes, pGraphicFrame{
		NvGraphicFramePr: pNvGraphicFramePr{
			CNvPr:             pCNvPr{ID: id, Name: fmt.Sprintf("Table %d", id-1)},
			CNvGraphicFramePr: pCNvGraphicFramePr{Locks: &aGraphicFrameLocks{NoGrp: "1"}},
		},
		Xfrm:    *xfrm(r),
		Graphic: aGraphic{GraphicData: aGraphicData{URI: uriTable, Tbl: tbl}},
	})
	return nil
}

func cellXML(cell Cell) (aTc, error) {
	tc := aTc{TxBody: aTxBody{P: []aP{{}}}}
	if cell.Text != "" {
		rpr := &aRPr{Lang: "en-US", Dirty: "0"}
		if cell.Size > 0 {
			rpr.Sz = int(math.Round(cell.Size * 100))
		}
		if cell.Bold {
			rpr.B = "1"
		}
		if cell.Italic {
			rpr.I = "1"
		}
		if cell.Color != "" {
			c, err := normalizeColor(cell.Color)
			if err != nil {
				return aTc{}, err
			}
			rpr.SolidFill = solidFill(c)
		}
		tc.TxBody.P[0].R = []aR{{RPr: rpr, T: cell.Text}}
	}
	if cell.Fill != "" {
		c, err := normalizeColor(cell.Fill)
		if err != nil {
			return aTc{}, err
		}
		tc.TcPr.SolidFill = solidFill(c)
	}
	return tc, nil
}
