package model

import "strings"

// TableCell is one cell of an assembled table. A cell with RowSpan or
// ColSpan greater than 1 covers several grid slots; CellAt resolves a
// slot to its covering cell.
type TableCell struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int

	// Tokens is the cell's resolved text.
	Tokens []TextToken

	// Box is the cell's page-space bounding box.
	Box Box

	// Empty marks a gap-fill cell inserted while degrading an
	// inconsistent model grid.
	Empty bool
}

// Text returns the cell's text content.
func (c *TableCell) Text() string {
	return TokensText(c.Tokens)
}

// covers reports whether the cell covers the grid slot (row, col).
func (c *TableCell) covers(row, col int) bool {
	return row >= c.Row && row < c.Row+c.RowSpan &&
		col >= c.Col && col < c.Col+c.ColSpan
}

// Table is a row/column-indexed cell matrix produced by the table
// assembler. Invariant: every slot in [0,RowCount)x[0,ColCount) is
// covered by exactly one cell, accounting for spans. Tables built from
// inconsistent model grids carry Degraded=true.
type Table struct {
	Cells    []TableCell
	RowCount int
	ColCount int

	// Box is the table's page-space bounding box.
	Box Box

	// Degraded is true when the model grid required gap-filling or
	// overlap-merging.
	Degraded bool
}

// CellAt returns the cell covering grid slot (row, col), or nil if the
// slot is out of range or uncovered.
func (t *Table) CellAt(row, col int) *TableCell {
	if row < 0 || row >= t.RowCount || col < 0 || col >= t.ColCount {
		return nil
	}
	for i := range t.Cells {
		if t.Cells[i].covers(row, col) {
			return &t.Cells[i]
		}
	}
	return nil
}

// Validate checks the grid-coverage invariant: no gaps, no
// double-coverage. It returns one error per faulty slot.
func (t *Table) Validate() []*TableGridInconsistencyError {
	var faults []*TableGridInconsistencyError
	for row := 0; row < t.RowCount; row++ {
		for col := 0; col < t.ColCount; col++ {
			covered := 0
			for i := range t.Cells {
				if t.Cells[i].covers(row, col) {
					covered++
				}
			}
			switch {
			case covered == 0:
				faults = append(faults, &TableGridInconsistencyError{Kind: GridGap, Row: row, Col: col})
			case covered > 1:
				faults = append(faults, &TableGridInconsistencyError{Kind: GridOverlap, Row: row, Col: col})
			}
		}
	}
	return faults
}

// Text returns the table content as tab-separated rows, reading each
// grid slot through its covering cell.
func (t *Table) Text() string {
	var sb strings.Builder
	for row := 0; row < t.RowCount; row++ {
		for col := 0; col < t.ColCount; col++ {
			if cell := t.CellAt(row, col); cell != nil && cell.Row == row && cell.Col == col {
				sb.WriteString(cell.Text())
			}
			if col < t.ColCount-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
