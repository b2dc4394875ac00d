package docweave

import (
	"context"
	"image"

	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/regions"
	"github.com/tsawler/docweave/tables"
)

// PageSource supplies per-page primitive extractions: dimensions,
// rotation, native text spans and the raster image. Implementations
// wrap a PDF rasterizer; the converter never touches PDF bytes itself.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount(ctx context.Context) (int, error)

	// Page returns one page's extraction. The returned page's raster is
	// in model space (rotated as stored); its spans are in page space.
	Page(ctx context.Context, index int) (model.Page, error)
}

// LayoutModel is the layout-detection collaborator. Given a page
// raster it returns classified boxes in model pixel space.
type LayoutModel interface {
	DetectRegions(ctx context.Context, img image.Image) ([]regions.RawDetection, error)
}

// TableModel is the table-structure collaborator. Given a raster crop
// of a table region it returns the raw cell grid in model pixel space
// relative to the full page raster.
type TableModel interface {
	RecognizeCells(ctx context.Context, img image.Image) ([]tables.RawCell, error)
}

// OCREngine recognizes word tokens in a raster crop. Token boxes are
// crop-local; the converter translates them into page space. The ocr
// package's Engine satisfies this interface when built with the "ocr"
// build tag.
type OCREngine interface {
	Recognize(img image.Image) ([]model.TextToken, error)
}

// Models bundles the model collaborators a conversion needs. Layout is
// required; Table and OCR are optional and their absence degrades the
// corresponding features instead of failing.
type Models struct {
	Layout LayoutModel
	Table  TableModel
	OCR    OCREngine
}
