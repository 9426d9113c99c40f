package builder

import (
	"strings"

	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
)

func (b *Builder) addText(slide *pptx.Slide, el deck.Element) error {
	if isEmptyText(el.Text) {
		return nil
	}
	opts, err := payloadOptions(el.Options)
	if err != nil {
		return err
	}
	return slide.AddTextBox(opts.rect(textBox), textParagraphs(el.Text, opts))
}

func isEmptyText(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}

// textParagraphs lays out a text payload. A string becomes one paragraph
// per line (or markdown blocks when options.markdown is set); an array
// becomes one paragraph per item.
func textParagraphs(text any, opts options) []pptx.Paragraph {
	base := baseRun(opts)
	align := opts.str("align")

	switch t := text.(type) {
	case string:
		if opts.boolean("markdown") {
			return markdownParagraphs(t, base, align)
		}
		return lineParagraphs(t, base, align)
	case []any:
		paras := make([]pptx.Paragraph, 0, len(t))
		for _, item := range t {
			paras = append(paras, itemParagraph(item, base, align))
		}
		return paras
	default:
		return lineParagraphs(formatValue(t), base, align)
	}
}

func baseRun(opts options) pptx.Run {
	return pptx.Run{
		Bold:   opts.boolean("bold"),
		Italic: opts.boolean("italic"),
		Size:   opts.floatOr("fontSize", 0),
		Color:  opts.str("color"),
		Font:   opts.str("fontFace"),
	}
}

func lineParagraphs(s string, base pptx.Run, align string) []pptx.Paragraph {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	paras := make([]pptx.Paragraph, 0, len(lines))
	for _, line := range lines {
		p := pptx.Paragraph{Align: align}
		if line != "" {
			run := base
			run.Text = line
			p.Runs = []pptx.Run{run}
		}
		paras = append(paras, p)
	}
	return paras
}

// itemParagraph renders one entry of a text array. Objects carry their own
// formatting, flat or under "options", on top of the element defaults;
// anything else is shown as its string form.
func itemParagraph(item any, base pptx.Run, align string) pptx.Paragraph {
	run := base
	m, ok := item.(map[string]any)
	if !ok {
		run.Text = formatValue(item)
		return pptx.Paragraph{Runs: []pptx.Run{run}, Align: align}
	}

	run.Text = formatValue(m["text"])
	for _, o := range []options{options(m), options(m).nested("options")} {
		if _, ok := o["bold"]; ok {
			run.Bold = o.boolean("bold")
		}
		if _, ok := o["italic"]; ok {
			run.Italic = o.boolean("italic")
		}
		if v, ok := o.float("fontSize"); ok {
			run.Size = v
		}
		if c := o.str("color"); c != "" {
			run.Color = c
		}
		if f := o.str("fontFace"); f != "" {
			run.Font = f
		}
		if a := o.str("align"); a != "" {
			align = a
		}
	}
	return pptx.Paragraph{Runs: []pptx.Run{run}, Align: align}
}
