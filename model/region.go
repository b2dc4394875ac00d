package model

// RegionClass is the fixed, closed set of classes the layout model can
// assign to a region. Labels outside this set surface an
// UnknownClassLabelError rather than being silently coerced.
type RegionClass int

const (
	ClassText RegionClass = iota
	ClassTitle
	ClassSectionHeader
	ClassTable
	ClassFigure
	ClassCaption
	ClassListItem
	ClassFootnote
	ClassPageHeader
	ClassPageFooter
)

// String returns the canonical label for the region class.
func (c RegionClass) String() string {
	switch c {
	case ClassText:
		return "Text"
	case ClassTitle:
		return "Title"
	case ClassSectionHeader:
		return "SectionHeader"
	case ClassTable:
		return "Table"
	case ClassFigure:
		return "Figure"
	case ClassCaption:
		return "Caption"
	case ClassListItem:
		return "ListItem"
	case ClassFootnote:
		return "Footnote"
	case ClassPageHeader:
		return "PageHeader"
	case ClassPageFooter:
		return "PageFooter"
	default:
		return "Unknown"
	}
}

// Region is a classified area on one page. Regions on the same page may
// geometrically overlap; overlap is resolved by the reading order
// resolver and tree builder, never silently ignored.
type Region struct {
	// Class is the region's layout class.
	Class RegionClass

	// Box is the region's bounding box in page space.
	Box Box

	// Confidence is the layout model's score in [0,1].
	Confidence float64

	// PageIndex is the 0-based index of the owning page.
	PageIndex int

	// DetectionIndex is the region's index in the layout model's output
	// list, used as the final stable tie-break in reading order.
	DetectionIndex int

	// Tokens is the region's resolved text, filled by the text source
	// merger. Empty for Table and Figure regions.
	Tokens []TextToken

	// FontSize is the average font-size hint of the native spans that
	// contributed tokens, or 0 when the region resolved to OCR text.
	// Used by the heading-level heuristic.
	FontSize float64

	// Table is the assembled cell grid for Table regions, nil otherwise.
	// A Table region whose assembly failed keeps Table nil and degrades
	// to a text region.
	Table *Table
}

// Text returns the region's resolved text content.
func (r Region) Text() string {
	return TokensText(r.Tokens)
}

// OrderedRegion is a Region with its assigned document-linear sequence
// index. Sequence indices are strictly increasing, unique across the
// whole document, and monotonic in page index.
type OrderedRegion struct {
	Region   Region
	Sequence int
}
