package docweave

import (
	"fmt"
	"strings"
)

// WarningKind identifies the category of a conversion warning.
type WarningKind int

const (
	// WarnRegionDropped: a layout detection fell below the confidence
	// floor and was discarded.
	WarnRegionDropped WarningKind = iota

	// WarnUnknownLabelMapped: the layout model emitted a label outside
	// the known class set and it was coerced to Text.
	WarnUnknownLabelMapped

	// WarnMissingTextSource: a region had neither native nor OCR text
	// and produced an empty node.
	WarnMissingTextSource

	// WarnTokensDropped: candidate text tokens were dropped while
	// resolving a region or table cell.
	WarnTokensDropped

	// WarnTableDegraded: a table's cell grid was inconsistent or
	// unavailable and the table was repaired or downgraded to text.
	WarnTableDegraded

	// WarnOCRFailed: the OCR engine failed for one region; the region
	// kept whatever native text it had.
	WarnOCRFailed
)

// String returns a short label for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnRegionDropped:
		return "region-dropped"
	case WarnUnknownLabelMapped:
		return "unknown-label-mapped"
	case WarnMissingTextSource:
		return "missing-text-source"
	case WarnTokensDropped:
		return "tokens-dropped"
	case WarnTableDegraded:
		return "table-degraded"
	case WarnOCRFailed:
		return "ocr-failed"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue encountered during conversion.
// The document tree is still produced; warnings tell the caller where
// it is degraded.
type Warning struct {
	Kind      WarningKind
	PageIndex int
	Message   string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s: %s", w.PageIndex, w.Kind, w.Message)
}

// FormatWarnings joins warnings into a multi-line string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
