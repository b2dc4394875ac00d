package model

import "image"

// NativeSpan is a run of text extracted directly from the PDF's text
// layer (not OCR), with its page-space box and a font-size hint.
type NativeSpan struct {
	Text     string
	Box      Box
	FontSize float64
}

// Page holds the per-page primitive extraction produced by the PDF source
// collaborator: dimensions, rotation, the native text layer, and a
// reference to the rendered raster.
type Page struct {
	// Index is the 0-based page ordinal.
	Index int

	// Width and Height are the page pixel dimensions in page-reading
	// space (unrotated).
	Width  float64
	Height float64

	// Rotation is the page's clockwise render rotation: 0, 90, 180 or 270.
	// The raster is rendered rotated; boxes from the layout and table
	// models arrive in that rotated (model) space.
	Rotation int

	// Spans is the ordered native text layer.
	Spans []NativeSpan

	// Raster is the rendered page image, in model space. May be nil when
	// the source provides no raster (native-text-only conversion).
	Raster image.Image
}

// Dims returns the page dimensions in page-reading space.
func (p Page) Dims() Dims {
	return Dims{Width: p.Width, Height: p.Height}
}

// Bounds returns the page's bounding box in page space.
func (p Page) Bounds() Box {
	return Box{Right: p.Width, Bottom: p.Height}
}
