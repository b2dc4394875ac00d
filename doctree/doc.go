// Package doctree folds ordered, text-resolved regions into the final
// hierarchical document tree: headings open sections that nest by
// level, consecutive list items group into list nodes, tables and
// figures attach as leaves, and every node keeps provenance back to
// its page coordinates. The package also renders trees to Markdown and
// HTML.
package doctree
