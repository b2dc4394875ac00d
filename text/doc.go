// Package text reconciles the two text sources available for a region:
// the PDF's native text layer and OCR tokens recognized from the page
// raster. The merger picks the authoritative source per region based on
// coverage, resolves sub-box conflicts in favor of native text, clips
// tokens to the region, and orders the result line-by-line for reading.
package text
