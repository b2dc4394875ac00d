package doctree

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docweave/model"
)

// HTML renders a document tree as an HTML document string. Heading
// children render as siblings after their heading element, matching
// HTML's flat sectioning convention.
func HTML(root *model.DocumentNode) (string, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element("html")
	doc.AppendChild(htmlEl)
	body := element("body")
	htmlEl.AppendChild(element("head"))
	htmlEl.AppendChild(body)

	appendHTMLChildren(body, root)

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return sb.String(), nil
}

func appendHTMLChildren(parent *html.Node, n *model.DocumentNode) {
	for _, child := range n.Children {
		appendHTMLNode(parent, child)
	}
}

func appendHTMLNode(parent *html.Node, n *model.DocumentNode) {
	switch n.Kind {
	case model.KindHeading:
		level := n.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		h := element(fmt.Sprintf("h%d", level))
		h.AppendChild(textNode(n.Text))
		parent.AppendChild(h)
		appendHTMLChildren(parent, n)

	case model.KindParagraph:
		p := element("p")
		p.AppendChild(textNode(n.Text))
		parent.AppendChild(p)

	case model.KindList:
		ul := element("ul")
		for _, item := range n.Children {
			li := element("li")
			li.AppendChild(textNode(item.Text))
			ul.AppendChild(li)
		}
		parent.AppendChild(ul)

	case model.KindTable:
		if t := htmlTable(n.Table); t != nil {
			parent.AppendChild(t)
		}

	case model.KindFigure:
		fig := element("figure")
		if n.Text != "" {
			caption := element("figcaption")
			caption.AppendChild(textNode(n.Text))
			fig.AppendChild(caption)
		}
		parent.AppendChild(fig)
	}
}

// htmlTable renders a table with one td per cell anchor; slots covered
// by a span are expressed via rowspan/colspan attributes.
func htmlTable(table *model.Table) *html.Node {
	if table == nil || table.RowCount == 0 || table.ColCount == 0 {
		return nil
	}

	t := element("table")
	for r := 0; r < table.RowCount; r++ {
		tr := element("tr")
		for c := 0; c < table.ColCount; c++ {
			cell := table.CellAt(r, c)
			if cell == nil || cell.Row != r || cell.Col != c {
				continue
			}
			td := element("td")
			if cell.RowSpan > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "rowspan", Val: fmt.Sprintf("%d", cell.RowSpan)})
			}
			if cell.ColSpan > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: fmt.Sprintf("%d", cell.ColSpan)})
			}
			td.AppendChild(textNode(cell.Text()))
			tr.AppendChild(td)
		}
		t.AppendChild(tr)
	}
	return t
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
