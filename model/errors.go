package model

import "fmt"

// InvalidBoxError reports malformed geometry: a box whose left edge lies
// right of its right edge, or whose top edge lies below its bottom edge,
// or an unsupported page rotation. It is fatal for the item owning the
// box, never for the whole document.
type InvalidBoxError struct {
	Box      Box
	Rotation int
}

func (e *InvalidBoxError) Error() string {
	if e.Rotation != 0 {
		return fmt.Sprintf("invalid rotation %d (must be 0, 90, 180 or 270)", e.Rotation)
	}
	return fmt.Sprintf("invalid box: left=%.2f top=%.2f right=%.2f bottom=%.2f",
		e.Box.Left, e.Box.Top, e.Box.Right, e.Box.Bottom)
}

// UnknownClassLabelError reports a layout-model class label outside the
// fixed region class set. It is surfaced to the caller, who decides
// whether to map the label to Text or abort the conversion.
type UnknownClassLabelError struct {
	Label string
}

func (e *UnknownClassLabelError) Error() string {
	return fmt.Sprintf("unknown region class label %q", e.Label)
}

// GridFaultKind distinguishes the two ways a table model's cell grid can
// violate the coverage invariant.
type GridFaultKind int

const (
	// GridGap means a (row, col) slot is covered by no cell.
	GridGap GridFaultKind = iota
	// GridOverlap means a (row, col) slot is claimed by more than one cell.
	GridOverlap
)

func (k GridFaultKind) String() string {
	if k == GridOverlap {
		return "overlap"
	}
	return "gap"
}

// TableGridInconsistencyError reports a gap or overlap in a table model's
// cell grid. It is recoverable: the assembler degrades the table to a
// best-effort grid and surfaces this as a warning.
type TableGridInconsistencyError struct {
	Kind GridFaultKind
	Row  int
	Col  int
}

func (e *TableGridInconsistencyError) Error() string {
	return fmt.Sprintf("table grid %s at (%d,%d)", e.Kind, e.Row, e.Col)
}

// PageExtractionError reports that a page-level extraction collaborator
// failed. It fails the whole document conversion, naming the page.
type PageExtractionError struct {
	PageIndex int
	Err       error
}

func (e *PageExtractionError) Error() string {
	return fmt.Sprintf("page %d extraction failed: %v", e.PageIndex, e.Err)
}

// Unwrap returns the underlying collaborator error.
func (e *PageExtractionError) Unwrap() error {
	return e.Err
}
