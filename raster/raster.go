// Package raster provides the raster-image operations the pipeline
// needs around model inference and OCR: cropping a page image to a
// region and scaling crops to a model's input resolution.
package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/tsawler/docweave/model"
)

// Crop returns the part of img covered by the given page-space box,
// clipped to the image bounds. The returned image's origin is (0,0).
func Crop(img image.Image, box model.Box) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("cropping nil image")
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rect := image.Rect(
		bounds.Min.X+int(box.Left),
		bounds.Min.Y+int(box.Top),
		bounds.Min.X+int(box.Right+0.5),
		bounds.Min.Y+int(box.Bottom+0.5),
	).Intersect(bounds)

	if rect.Empty() {
		return nil, fmt.Errorf("crop box %v lies outside image bounds %v", box, bounds)
	}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), img, rect.Min, draw.Src)
	return out, nil
}

// Scale resamples img to the given dimensions using bilinear
// interpolation.
func Scale(img image.Image, width, height int) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("scaling nil image")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid scale target %dx%d", width, height)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// CropRegion crops the page raster to a region. The raster is in model
// space (rotated as stored), so the region's page-space box is mapped
// back into model space before cropping.
func CropRegion(page model.Page, region model.Region) (image.Image, error) {
	if page.Raster == nil {
		return nil, fmt.Errorf("page %d has no raster image", page.Index)
	}

	box, err := model.Normalize(region.Box, model.SpacePage, model.SpaceModel, page.Dims(), page.Rotation)
	if err != nil {
		return nil, fmt.Errorf("page %d region box: %w", page.Index, err)
	}

	crop, err := Crop(page.Raster, box)
	if err != nil {
		return nil, fmt.Errorf("cropping page %d region: %w", page.Index, err)
	}
	return crop, nil
}
