// Package docweave reconstructs structured documents from per-page PDF
// extractions and layout-model outputs. It reconciles the native text
// layer with OCR tokens, assembles table cell grids, resolves reading
// order across column bands and pages, and folds everything into a
// document tree with per-node provenance.
//
// Basic usage:
//
//	conv := docweave.NewConverter(source, docweave.Models{Layout: layoutModel})
//	tree, warnings, err := conv.Convert(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docweave.FormatWarnings(warnings))
//	}
//	fmt.Println(doctree.Markdown(tree))
//
// The heavy lifting (PDF rasterization, layout detection, table
// structure recognition, OCR) lives behind the PageSource, LayoutModel,
// TableModel and OCREngine interfaces; this package owns only the
// deterministic reconstruction between them.
package docweave

import (
	"context"

	"github.com/tsawler/docweave/model"
)

// Convert runs a conversion with default configuration. It is
// shorthand for NewConverter(source, models).Convert(ctx).
func Convert(ctx context.Context, source PageSource, models Models) (*model.DocumentNode, []Warning, error) {
	return NewConverter(source, models).Convert(ctx)
}
