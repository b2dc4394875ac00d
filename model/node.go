package model

// NodeKind is the closed set of document tree node variants.
type NodeKind int

const (
	// KindDocument is the root node. It carries no provenance.
	KindDocument NodeKind = iota
	KindParagraph
	KindHeading
	KindTable
	KindFigure
	KindList
)

// String returns a string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindTable:
		return "table"
	case KindFigure:
		return "figure"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Provenance links a document node back to a page location.
type Provenance struct {
	PageIndex int
	Box       Box
}

// DocumentNode is one node of the reconstructed document tree.
// Heading and List nodes carry ordered children; the other kinds are
// leaves. The root Document node carries children but no provenance.
type DocumentNode struct {
	Kind NodeKind

	// Text is the node's text content (paragraphs, headings, list items).
	Text string

	// Level is the heading level, 1 or greater. Only set for headings.
	Level int

	// Role is the region class the node was built from. Distinguishes
	// captions, footnotes and page furniture rendered as paragraphs.
	Role RegionClass

	// Table is the assembled table for table nodes, nil otherwise.
	Table *Table

	// Provenance lists the (page, box) pairs this node was built from.
	Provenance []Provenance

	// Children are the node's ordered child nodes.
	Children []*DocumentNode
}

// AddChild appends a child node.
func (n *DocumentNode) AddChild(child *DocumentNode) {
	n.Children = append(n.Children, child)
}

// Walk visits the node and all descendants in depth-first document order.
// Walking stops early if fn returns false.
func (n *DocumentNode) Walk(fn func(*DocumentNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// NodeCount returns the number of nodes in the subtree, including n.
func (n *DocumentNode) NodeCount() int {
	count := 0
	n.Walk(func(*DocumentNode) bool {
		count++
		return true
	})
	return count
}

// FindAll returns every descendant node (including n) of the given kind,
// in document order.
func (n *DocumentNode) FindAll(kind NodeKind) []*DocumentNode {
	var found []*DocumentNode
	n.Walk(func(node *DocumentNode) bool {
		if node.Kind == kind {
			found = append(found, node)
		}
		return true
	})
	return found
}
