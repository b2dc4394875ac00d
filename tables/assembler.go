package tables

import (
	"errors"
	"fmt"

	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/text"
)

// RawCell is one entry of the table model's output: a grid position with
// spans and the cell's bounding box in model pixel space.
type RawCell struct {
	Row     int
	RowSpan int
	Col     int
	ColSpan int
	Box     model.Box
}

// Config holds configuration for the table assembler.
type Config struct {
	// Merge configures the per-cell text source arbitration. The same
	// thresholds apply as for ordinary regions.
	Merge text.Config
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{Merge: text.DefaultConfig()}
}

// Result holds the assembled table plus bookkeeping for warnings.
type Result struct {
	Table *model.Table

	// Faults lists the grid inconsistencies repaired during assembly.
	// A non-empty list means the table is degraded.
	Faults []*model.TableGridInconsistencyError

	// DroppedTokens counts text tokens dropped while resolving cells.
	DroppedTokens int
}

// ErrEmptyGrid is returned when the table model reports no cells at all.
// The caller degrades the region to plain text.
var ErrEmptyGrid = errors.New("table model returned an empty cell grid")

// Assembler maps table-model cell grids onto the page's text sources.
type Assembler struct {
	config Config
	merger *text.Merger
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	return &Assembler{
		config: config,
		merger: text.NewMergerWithConfig(config.Merge),
	}
}

// Assemble builds a table for a Table region from the model's raw cell
// grid and the page's text sources. Cell boxes are normalized from model
// space into page space, each cell gathers its tokens by the same
// arbitration rule used for regions, and the grid-coverage invariant is
// enforced: the returned table always covers every slot exactly once,
// degrading inconsistent input instead of failing.
func (a *Assembler) Assemble(region model.Region, page model.Page, rawCells []RawCell, ocrTokens []model.TextToken) (*Result, error) {
	if len(rawCells) == 0 {
		return nil, ErrEmptyGrid
	}

	result := &Result{}

	cells, err := a.normalizeCells(page, rawCells)
	if err != nil {
		return nil, err
	}

	cells, overlapFaults := mergeOverlaps(cells)
	result.Faults = append(result.Faults, overlapFaults...)

	rows, cols := gridExtent(cells)
	cells, gapFaults := fillGaps(cells, rows, cols)
	result.Faults = append(result.Faults, gapFaults...)

	// Resolve each cell's text against the page sources, restricted to
	// the cell's own box.
	for i := range cells {
		if cells[i].Empty {
			continue
		}
		tokens, stats := a.merger.Merge(cells[i].Box, page.Spans, ocrTokens)
		result.DroppedTokens += stats.DroppedTokens
		cells[i].Tokens = tokens
		if len(tokens) > 0 {
			cells[i].Box = tokenUnion(tokens)
		}
	}

	result.Table = &model.Table{
		Cells:    cells,
		RowCount: rows,
		ColCount: cols,
		Box:      region.Box,
		Degraded: len(result.Faults) > 0,
	}
	return result, nil
}

// normalizeCells converts raw cells into page-space TableCells, clamping
// degenerate spans and positions.
func (a *Assembler) normalizeCells(page model.Page, rawCells []RawCell) ([]model.TableCell, error) {
	cells := make([]model.TableCell, 0, len(rawCells))

	for i, raw := range rawCells {
		box, err := model.Normalize(raw.Box, model.SpaceModel, model.SpacePage, page.Dims(), page.Rotation)
		if err != nil {
			return nil, fmt.Errorf("table cell %d: %w", i, err)
		}

		cell := model.TableCell{
			Row:     raw.Row,
			Col:     raw.Col,
			RowSpan: raw.RowSpan,
			ColSpan: raw.ColSpan,
			Box:     box,
		}
		if cell.Row < 0 {
			cell.Row = 0
		}
		if cell.Col < 0 {
			cell.Col = 0
		}
		if cell.RowSpan < 1 {
			cell.RowSpan = 1
		}
		if cell.ColSpan < 1 {
			cell.ColSpan = 1
		}
		cells = append(cells, cell)
	}

	return cells, nil
}

// gridExtent computes the row and column counts implied by the cells.
func gridExtent(cells []model.TableCell) (rows, cols int) {
	for _, c := range cells {
		if c.Row+c.RowSpan > rows {
			rows = c.Row + c.RowSpan
		}
		if c.Col+c.ColSpan > cols {
			cols = c.Col + c.ColSpan
		}
	}
	return rows, cols
}

// tokenUnion returns the union of the tokens' boxes.
func tokenUnion(tokens []model.TextToken) model.Box {
	box := tokens[0].Box
	for _, tok := range tokens[1:] {
		box = box.Union(tok.Box)
	}
	return box
}
