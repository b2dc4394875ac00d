package model

import "math"

// Space identifies the coordinate space a Box is expressed in.
type Space int

const (
	// SpacePage is page-reading space: top-left origin, unrotated,
	// units are page pixels. All downstream components operate here.
	SpacePage Space = iota

	// SpaceModel is the pixel space of the rendered raster handed to the
	// layout and table models. When the page carries a rotation, the
	// raster (and therefore model space) is rotated relative to page space.
	SpaceModel

	// SpaceNormalized is page space scaled to the unit square [0,1]x[0,1].
	SpaceNormalized
)

// String returns a string representation of the coordinate space.
func (s Space) String() string {
	switch s {
	case SpacePage:
		return "page"
	case SpaceModel:
		return "model"
	case SpaceNormalized:
		return "normalized"
	default:
		return "unknown"
	}
}

// Box is an axis-aligned rectangle with top-left origin.
// Invariant: Left <= Right and Top <= Bottom, so the area is never negative.
type Box struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBox creates a box, swapping edges if necessary so the invariant holds.
func NewBox(left, top, right, bottom float64) Box {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Box{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Area returns the area of the box.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the box has zero area.
func (b Box) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Validate returns an InvalidBoxError if the box edges are inverted.
func (b Box) Validate() error {
	if b.Left > b.Right || b.Top > b.Bottom {
		return &InvalidBoxError{Box: b}
	}
	return nil
}

// Intersects checks whether two boxes overlap.
func (b Box) Intersects(other Box) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// Intersection returns the overlapping area of two boxes,
// or the zero Box if they do not intersect.
func (b Box) Intersection(other Box) Box {
	if !b.Intersects(other) {
		return Box{}
	}
	return Box{
		Left:   math.Max(b.Left, other.Left),
		Top:    math.Max(b.Top, other.Top),
		Right:  math.Min(b.Right, other.Right),
		Bottom: math.Min(b.Bottom, other.Bottom),
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	return Box{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Contains checks whether the box fully contains another box.
func (b Box) Contains(other Box) bool {
	return other.Left >= b.Left && other.Right <= b.Right &&
		other.Top >= b.Top && other.Bottom <= b.Bottom
}

// OverlapRatio calculates the intersection area divided by the area of
// the smaller box. Returns a value between 0 and 1.
func (b Box) OverlapRatio(other Box) float64 {
	if !b.Intersects(other) {
		return 0
	}

	minArea := math.Min(b.Area(), other.Area())
	if minArea == 0 {
		return 0
	}

	return b.Intersection(other).Area() / minArea
}

// Clip returns the part of the box inside bounds. The second return value
// is false if the box lies entirely outside bounds.
func (b Box) Clip(bounds Box) (Box, bool) {
	if !b.Intersects(bounds) {
		return Box{}, false
	}
	clipped := b.Intersection(bounds)
	if clipped.IsEmpty() {
		return Box{}, false
	}
	return clipped, true
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Dims holds page dimensions in page-reading space (unrotated pixels).
type Dims struct {
	Width  float64
	Height float64
}

// rotated returns the dimensions of the rendered raster for a given
// page rotation. A 90 or 270 degree rotation swaps width and height.
func (d Dims) rotated(rotation int) Dims {
	if rotation == 90 || rotation == 270 {
		return Dims{Width: d.Height, Height: d.Width}
	}
	return d
}

// Normalize converts a box between coordinate spaces. Page dimensions are
// given in page-reading space; rotation is the page's clockwise render
// rotation (0, 90, 180 or 270). Converting between model space and any
// other space un-rotates (or re-rotates) coordinates so that downstream
// components always operate in top-left-origin, unrotated page space.
//
// Normalize is a pure function and is idempotent when from == to.
// It fails with an InvalidBoxError if the input box is malformed, and
// with an error for unsupported rotation values.
func Normalize(b Box, from, to Space, page Dims, rotation int) (Box, error) {
	if err := b.Validate(); err != nil {
		return Box{}, err
	}
	switch rotation {
	case 0, 90, 180, 270:
	default:
		return Box{}, &InvalidBoxError{Box: b, Rotation: rotation}
	}

	if from == to {
		return b, nil
	}

	// Convert to page space first, then out to the target space.
	pageBox := b
	switch from {
	case SpaceModel:
		pageBox = unrotateBox(b, page, rotation)
	case SpaceNormalized:
		pageBox = Box{
			Left:   b.Left * page.Width,
			Top:    b.Top * page.Height,
			Right:  b.Right * page.Width,
			Bottom: b.Bottom * page.Height,
		}
	}

	var out Box
	switch to {
	case SpacePage:
		out = pageBox
	case SpaceModel:
		out = rotateBox(pageBox, page, rotation)
	case SpaceNormalized:
		if page.Width <= 0 || page.Height <= 0 {
			return Box{}, &InvalidBoxError{Box: b}
		}
		out = Box{
			Left:   pageBox.Left / page.Width,
			Top:    pageBox.Top / page.Height,
			Right:  pageBox.Right / page.Width,
			Bottom: pageBox.Bottom / page.Height,
		}
	}

	if err := out.Validate(); err != nil {
		return Box{}, err
	}
	return out, nil
}

// rotateBox maps a page-space box into the rotated raster (model) space.
func rotateBox(b Box, page Dims, rotation int) Box {
	x1, y1 := rotatePoint(b.Left, b.Top, page, rotation)
	x2, y2 := rotatePoint(b.Right, b.Bottom, page, rotation)
	return NewBox(x1, y1, x2, y2)
}

// unrotateBox maps a model-space box back into unrotated page space.
func unrotateBox(b Box, page Dims, rotation int) Box {
	x1, y1 := unrotatePoint(b.Left, b.Top, page, rotation)
	x2, y2 := unrotatePoint(b.Right, b.Bottom, page, rotation)
	return NewBox(x1, y1, x2, y2)
}

// rotatePoint applies a clockwise rotation to a page-space point,
// yielding raster coordinates.
func rotatePoint(x, y float64, page Dims, rotation int) (float64, float64) {
	switch rotation {
	case 90:
		return page.Height - y, x
	case 180:
		return page.Width - x, page.Height - y
	case 270:
		return y, page.Width - x
	default:
		return x, y
	}
}

// unrotatePoint inverts rotatePoint.
func unrotatePoint(x, y float64, page Dims, rotation int) (float64, float64) {
	switch rotation {
	case 90:
		return y, page.Height - x
	case 180:
		return page.Width - x, page.Height - y
	case 270:
		return page.Width - y, x
	default:
		return x, y
	}
}
