package builder

import (
	"fmt"
	"strings"

	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	defaultFontSize = 18
	monospaceFont   = "Courier New"
)

var headingScale = map[int]float64{1: 1.6, 2: 1.4, 3: 1.2}

// markdownParagraphs renders a markdown string as text box paragraphs.
// Block structure maps onto paragraphs and inline emphasis onto run styles.
func markdownParagraphs(src string, base pptx.Run, align string) []pptx.Paragraph {
	source := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	r := &mdRenderer{src: source, base: base, align: align}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n, base)
	}
	if len(r.paras) == 0 {
		return lineParagraphs(src, base, align)
	}
	return r.paras
}

type mdRenderer struct {
	src   []byte
	base  pptx.Run
	align string
	paras []pptx.Paragraph
}

func (r *mdRenderer) block(n ast.Node, style pptx.Run) {
	switch node := n.(type) {
	case *ast.Heading:
		h := style
		h.Bold = true
		size := style.Size
		if size == 0 {
			size = defaultFontSize
		}
		scale, ok := headingScale[node.Level]
		if !ok {
			scale = 1.1
		}
		h.Size = size * scale
		r.add(pptx.Paragraph{Runs: r.inlines(node, h), Align: r.align})

	case *ast.Paragraph, *ast.TextBlock:
		r.add(pptx.Paragraph{Runs: r.inlines(node, style), Align: r.align})

	case *ast.List:
		num := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if _, nested := c.(*ast.List); nested {
					r.block(c, style)
					continue
				}
				runs := r.inlines(c, style)
				p := pptx.Paragraph{Align: r.align}
				if node.IsOrdered() {
					prefix := style
					prefix.Text = fmt.Sprintf("%d. ", num)
					p.Runs = append([]pptx.Run{prefix}, runs...)
				} else {
					p.Runs = runs
					p.Bullet = true
				}
				r.add(p)
			}
			num++
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		code := style
		code.Font = monospaceFont
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := code
			line.Text = strings.TrimRight(string(seg.Value(r.src)), "\n")
			r.add(pptx.Paragraph{Runs: []pptx.Run{line}, Align: r.align})
		}

	case *ast.Blockquote:
		quote := style
		quote.Italic = true
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(c, quote)
		}

	case *ast.ThematicBreak:

	default:
		runs := r.inlines(n, style)
		if len(runs) > 0 {
			r.add(pptx.Paragraph{Runs: runs, Align: r.align})
		}
	}
}

func (r *mdRenderer) add(p pptx.Paragraph) {
	r.paras = append(r.paras, p)
}

// inlines flattens the inline children of n into runs.
func (r *mdRenderer) inlines(n ast.Node, style pptx.Run) []pptx.Run {
	var runs []pptx.Run
	emit := func(s string, st pptx.Run) {
		if s == "" {
			return
		}
		if last := len(runs) - 1; last >= 0 && sameStyle(runs[last], st) {
			runs[last].Text += s
			return
		}
		st.Text = s
		runs = append(runs, st)
	}

	var walk func(n ast.Node, st pptx.Run)
	walk = func(n ast.Node, st pptx.Run) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Text:
				emit(string(node.Value(r.src)), st)
				if node.SoftLineBreak() || node.HardLineBreak() {
					emit(" ", st)
				}
			case *ast.String:
				emit(string(node.Value), st)
			case *ast.Emphasis:
				em := st
				if node.Level >= 2 {
					em.Bold = true
				} else {
					em.Italic = true
				}
				walk(node, em)
			case *ast.CodeSpan:
				code := st
				code.Font = monospaceFont
				walk(node, code)
			case *ast.AutoLink:
				emit(string(node.URL(r.src)), st)
			default:
				walk(node, st)
			}
		}
	}
	walk(n, style)

	if len(runs) > 0 {
		last := len(runs) - 1
		runs[last].Text = strings.TrimRight(runs[last].Text, " ")
	}
	return runs
}

func sameStyle(a, b pptx.Run) bool {
	a.Text, b.Text = "", ""
	return a == b
}
