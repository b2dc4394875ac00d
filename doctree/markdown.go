package doctree

import (
	"strings"

	"github.com/tsawler/docweave/model"
)

// Markdown renders a document tree as Markdown. Headings map to ATX
// headings at their level, lists to dash bullets, tables to pipe
// tables (spanning cells repeat their text across the slots they
// cover), and figures to an image placeholder comment.
func Markdown(root *model.DocumentNode) string {
	var sb strings.Builder
	writeMarkdown(&sb, root)
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeMarkdown(sb *strings.Builder, n *model.DocumentNode) {
	switch n.Kind {
	case model.KindDocument:
		for _, child := range n.Children {
			writeMarkdown(sb, child)
		}

	case model.KindHeading:
		level := n.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(" ")
		sb.WriteString(n.Text)
		sb.WriteString("\n\n")
		for _, child := range n.Children {
			writeMarkdown(sb, child)
		}

	case model.KindParagraph:
		if n.Text != "" {
			sb.WriteString(n.Text)
			sb.WriteString("\n\n")
		}

	case model.KindList:
		for _, item := range n.Children {
			sb.WriteString("- ")
			sb.WriteString(item.Text)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")

	case model.KindTable:
		writeMarkdownTable(sb, n.Table)

	case model.KindFigure:
		sb.WriteString("<!-- image -->")
		sb.WriteString("\n\n")
		if n.Text != "" {
			sb.WriteString(n.Text)
			sb.WriteString("\n\n")
		}
	}
}

func writeMarkdownTable(sb *strings.Builder, table *model.Table) {
	if table == nil || table.RowCount == 0 || table.ColCount == 0 {
		return
	}

	for r := 0; r < table.RowCount; r++ {
		sb.WriteString("|")
		for c := 0; c < table.ColCount; c++ {
			sb.WriteString(" ")
			if cell := table.CellAt(r, c); cell != nil {
				sb.WriteString(escapeMarkdownCell(cell.Text()))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")

		if r == 0 {
			sb.WriteString("|")
			for c := 0; c < table.ColCount; c++ {
				sb.WriteString("---|")
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
}

func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
