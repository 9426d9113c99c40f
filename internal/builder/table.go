package builder

import (
	"fmt"

	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
)

func (b *Builder) addTable(slide *pptx.Slide, el deck.Element) error {
	raws, err := payloadArray("rows", el.Rows)
	if err != nil || len(raws) == 0 {
		return err
	}
	opts, err := payloadOptions(el.Options)
	if err != nil {
		return err
	}
	defaults := pptx.Cell{
		Size:  opts.floatOr("fontSize", 0),
		Color: opts.str("color"),
	}

	rows := make([][]pptx.Cell, 0, len(raws))
	for i, raw := range raws {
		cells, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("row %d is %T, want an array of cells", i, raw)
		}
		row := make([]pptx.Cell, len(cells))
		for j, c := range cells {
			row[j] = tableCell(c, defaults)
		}
		rows = append(rows, row)
	}
	return slide.AddTable(opts.rect(tableBox), rows)
}

// tableCell reads a scalar cell or a {text, bold, italic, color, fill,
// fontSize} object.
func tableCell(v any, defaults pptx.Cell) pptx.Cell {
	cell := defaults
	m, ok := v.(map[string]any)
	if !ok {
		cell.Text = formatValue(v)
		return cell
	}
	cell.Text = formatValue(m["text"])
	for _, o := range []options{options(m), options(m).nested("options")} {
		if _, ok := o["bold"]; ok {
			cell.Bold = o.boolean("bold")
		}
		if _, ok := o["italic"]; ok {
			cell.Italic = o.boolean("italic")
		}
		if v, ok := o.float("fontSize"); ok {
			cell.Size = v
		}
		if c := o.str("color"); c != "" {
			cell.Color = c
		}
		if f := o.str("fill"); f != "" {
			cell.Fill = f
		}
	}
	return cell
}
