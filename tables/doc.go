// Package tables assembles the cell grids reported by the table
// structure model into row/column-indexed tables backed by the page's
// text sources. Inconsistent model grids (overlapping cells, uncovered
// slots) are repaired into a best-effort grid rather than aborting the
// conversion: overlaps merge, gaps become empty cells, and every repair
// is surfaced as a warning.
package tables
