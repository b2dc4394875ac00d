package tables

import "github.com/tsawler/docweave/model"

// cellRect is the grid-slot rectangle a cell covers.
type cellRect struct {
	rowStart, rowEnd int // [rowStart, rowEnd)
	colStart, colEnd int // [colStart, colEnd)
}

func rectOf(c model.TableCell) cellRect {
	return cellRect{
		rowStart: c.Row,
		rowEnd:   c.Row + c.RowSpan,
		colStart: c.Col,
		colEnd:   c.Col + c.ColSpan,
	}
}

func (r cellRect) intersects(other cellRect) bool {
	return r.rowStart < other.rowEnd && other.rowStart < r.rowEnd &&
		r.colStart < other.colEnd && other.colStart < r.colEnd
}

// mergeOverlaps repairs double-coverage by repeatedly merging each
// overlapping cell into the earliest cell it collides with. The merged
// cell covers the bounding rectangle of both, with a union box and the
// combined tokens; merging can cascade until no overlaps remain. One
// fault is recorded per merged-away cell, at its original anchor.
func mergeOverlaps(cells []model.TableCell) ([]model.TableCell, []*model.TableGridInconsistencyError) {
	var faults []*model.TableGridInconsistencyError

	merged := true
	for merged {
		merged = false
		for i := 0; i < len(cells) && !merged; i++ {
			for j := i + 1; j < len(cells); j++ {
				if !rectOf(cells[i]).intersects(rectOf(cells[j])) {
					continue
				}

				faults = append(faults, &model.TableGridInconsistencyError{
					Kind: model.GridOverlap,
					Row:  cells[j].Row,
					Col:  cells[j].Col,
				})

				a, b := rectOf(cells[i]), rectOf(cells[j])
				cells[i].Row = minInt(a.rowStart, b.rowStart)
				cells[i].Col = minInt(a.colStart, b.colStart)
				cells[i].RowSpan = maxInt(a.rowEnd, b.rowEnd) - cells[i].Row
				cells[i].ColSpan = maxInt(a.colEnd, b.colEnd) - cells[i].Col
				cells[i].Box = cells[i].Box.Union(cells[j].Box)
				cells[i].Tokens = append(cells[i].Tokens, cells[j].Tokens...)

				cells = append(cells[:j], cells[j+1:]...)
				merged = true
				break
			}
		}
	}

	return cells, faults
}

// fillGaps repairs uncovered grid slots by inserting empty cells, one
// fault per slot. The empty cell's box is estimated from the vertical
// extent of its row and the horizontal extent of its column, where
// neighbors exist to infer them from.
func fillGaps(cells []model.TableCell, rows, cols int) ([]model.TableCell, []*model.TableGridInconsistencyError) {
	var faults []*model.TableGridInconsistencyError

	covered := make([]bool, rows*cols)
	for _, c := range cells {
		for r := c.Row; r < c.Row+c.RowSpan; r++ {
			for col := c.Col; col < c.Col+c.ColSpan; col++ {
				covered[r*cols+col] = true
			}
		}
	}

	rowExtents, colExtents := axisExtents(cells, rows, cols)

	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if covered[r*cols+col] {
				continue
			}
			faults = append(faults, &model.TableGridInconsistencyError{
				Kind: model.GridGap,
				Row:  r,
				Col:  col,
			})
			cells = append(cells, model.TableCell{
				Row:     r,
				Col:     col,
				RowSpan: 1,
				ColSpan: 1,
				Box:     gapBox(rowExtents[r], colExtents[col]),
				Empty:   true,
			})
		}
	}

	return cells, faults
}

// axisExtent is a [min, max] interval on one axis; ok marks it known.
type axisExtent struct {
	min, max float64
	ok       bool
}

func (e *axisExtent) extend(min, max float64) {
	if !e.ok {
		e.min, e.max, e.ok = min, max, true
		return
	}
	if min < e.min {
		e.min = min
	}
	if max > e.max {
		e.max = max
	}
}

// axisExtents infers each row's vertical extent and each column's
// horizontal extent from the single-span cells anchored there.
func axisExtents(cells []model.TableCell, rows, cols int) ([]axisExtent, []axisExtent) {
	rowExtents := make([]axisExtent, rows)
	colExtents := make([]axisExtent, cols)

	for _, c := range cells {
		if c.RowSpan == 1 && c.Row < rows {
			rowExtents[c.Row].extend(c.Box.Top, c.Box.Bottom)
		}
		if c.ColSpan == 1 && c.Col < cols {
			colExtents[c.Col].extend(c.Box.Left, c.Box.Right)
		}
	}

	return rowExtents, colExtents
}

// gapBox builds a best-effort box for a gap-fill cell. When either axis
// extent is unknown the zero box is used.
func gapBox(row, col axisExtent) model.Box {
	if !row.ok || !col.ok {
		return model.Box{}
	}
	return model.Box{Left: col.min, Top: row.min, Right: col.max, Bottom: row.max}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
