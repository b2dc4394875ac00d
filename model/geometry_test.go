package model

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func boxesAlmostEqual(a, b Box) bool {
	return almostEqual(a.Left, b.Left) && almostEqual(a.Top, b.Top) &&
		almostEqual(a.Right, b.Right) && almostEqual(a.Bottom, b.Bottom)
}

func TestNewBoxSwapsInvertedEdges(t *testing.T) {
	b := NewBox(100, 80, 10, 20)
	if b.Left != 10 || b.Right != 100 || b.Top != 20 || b.Bottom != 80 {
		t.Errorf("NewBox did not normalize edges: %+v", b)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("normalized box should validate, got %v", err)
	}
}

func TestValidateRejectsInvertedBox(t *testing.T) {
	b := Box{Left: 100, Top: 0, Right: 10, Bottom: 50}
	err := b.Validate()
	if err == nil {
		t.Fatal("expected InvalidBoxError for inverted box")
	}
	if _, ok := err.(*InvalidBoxError); !ok {
		t.Errorf("expected *InvalidBoxError, got %T", err)
	}
}

func TestIntersectsAndIntersection(t *testing.T) {
	a := Box{Left: 0, Top: 0, Right: 100, Bottom: 100}
	b := Box{Left: 50, Top: 50, Right: 150, Bottom: 150}
	c := Box{Left: 200, Top: 200, Right: 300, Bottom: 300}

	if !a.Intersects(b) {
		t.Error("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("expected a and c not to intersect")
	}

	inter := a.Intersection(b)
	want := Box{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if !boxesAlmostEqual(inter, want) {
		t.Errorf("intersection = %+v, want %+v", inter, want)
	}
}

func TestOverlapRatioUsesSmallerBox(t *testing.T) {
	big := Box{Left: 0, Top: 0, Right: 100, Bottom: 100}
	small := Box{Left: 10, Top: 10, Right: 30, Bottom: 30}

	// small is fully inside big, so ratio should be 1 regardless of
	// big's larger area
	if r := big.OverlapRatio(small); !almostEqual(r, 1.0) {
		t.Errorf("OverlapRatio = %f, want 1.0", r)
	}

	half := Box{Left: 90, Top: 0, Right: 110, Bottom: 100}
	// intersection is 10x100 = 1000; smaller box area is 20x100 = 2000
	if r := big.OverlapRatio(half); !almostEqual(r, 0.5) {
		t.Errorf("OverlapRatio = %f, want 0.5", r)
	}

	far := Box{Left: 500, Top: 500, Right: 600, Bottom: 600}
	if r := big.OverlapRatio(far); r != 0 {
		t.Errorf("OverlapRatio for disjoint boxes = %f, want 0", r)
	}
}

func TestUnionAndContains(t *testing.T) {
	a := Box{Left: 0, Top: 0, Right: 50, Bottom: 50}
	b := Box{Left: 40, Top: 40, Right: 100, Bottom: 120}

	u := a.Union(b)
	want := Box{Left: 0, Top: 0, Right: 100, Bottom: 120}
	if !boxesAlmostEqual(u, want) {
		t.Errorf("Union = %+v, want %+v", u, want)
	}

	if !u.Contains(a) || !u.Contains(b) {
		t.Error("union should contain both inputs")
	}
	if a.Contains(b) {
		t.Error("a should not contain b")
	}
}

func TestClip(t *testing.T) {
	bounds := Box{Left: 0, Top: 0, Right: 100, Bottom: 100}

	inside := Box{Left: 10, Top: 10, Right: 20, Bottom: 20}
	clipped, ok := inside.Clip(bounds)
	if !ok || !boxesAlmostEqual(clipped, inside) {
		t.Errorf("clipping an inside box should be a no-op, got %+v ok=%v", clipped, ok)
	}

	straddling := Box{Left: 90, Top: 90, Right: 150, Bottom: 150}
	clipped, ok = straddling.Clip(bounds)
	want := Box{Left: 90, Top: 90, Right: 100, Bottom: 100}
	if !ok || !boxesAlmostEqual(clipped, want) {
		t.Errorf("clipped = %+v ok=%v, want %+v", clipped, ok, want)
	}

	outside := Box{Left: 200, Top: 200, Right: 300, Bottom: 300}
	if _, ok = outside.Clip(bounds); ok {
		t.Error("clipping a fully outside box should report ok=false")
	}
}

func TestNormalizeIdempotentForSameSpace(t *testing.T) {
	page := Dims{Width: 600, Height: 800}
	b := Box{Left: 10, Top: 20, Right: 110, Bottom: 220}

	for _, space := range []Space{SpacePage, SpaceModel, SpaceNormalized} {
		got, err := Normalize(b, space, space, page, 90)
		if err != nil {
			t.Fatalf("Normalize(%s -> %s) error: %v", space, space, err)
		}
		if !boxesAlmostEqual(got, b) {
			t.Errorf("Normalize(%s -> %s) = %+v, want unchanged %+v", space, space, got, b)
		}
	}
}

func TestNormalizeModelToPageRotations(t *testing.T) {
	page := Dims{Width: 600, Height: 800}
	pageBox := Box{Left: 100, Top: 200, Right: 300, Bottom: 500}

	for _, rotation := range []int{0, 90, 180, 270} {
		modelBox, err := Normalize(pageBox, SpacePage, SpaceModel, page, rotation)
		if err != nil {
			t.Fatalf("rotation %d page->model: %v", rotation, err)
		}
		back, err := Normalize(modelBox, SpaceModel, SpacePage, page, rotation)
		if err != nil {
			t.Fatalf("rotation %d model->page: %v", rotation, err)
		}
		if !boxesAlmostEqual(back, pageBox) {
			t.Errorf("rotation %d round trip = %+v, want %+v", rotation, back, pageBox)
		}
		if modelBox.Validate() != nil {
			t.Errorf("rotation %d produced invalid model box %+v", rotation, modelBox)
		}
	}
}

func TestNormalize90DegreeMapping(t *testing.T) {
	// On a 90-degree clockwise rotated raster, the page's top-left corner
	// lands at the raster's top-right corner.
	page := Dims{Width: 600, Height: 800}
	corner := Box{Left: 0, Top: 0, Right: 10, Bottom: 10}

	modelBox, err := Normalize(corner, SpacePage, SpaceModel, page, 90)
	if err != nil {
		t.Fatal(err)
	}
	// Raster is 800 wide x 600 tall; the corner should be at the right edge.
	if !almostEqual(modelBox.Right, 800) {
		t.Errorf("expected right edge at 800, got %+v", modelBox)
	}
	if !almostEqual(modelBox.Top, 0) {
		t.Errorf("expected top edge at 0, got %+v", modelBox)
	}
}

func TestNormalizeToNormalizedSpace(t *testing.T) {
	page := Dims{Width: 200, Height: 400}
	b := Box{Left: 50, Top: 100, Right: 150, Bottom: 300}

	norm, err := Normalize(b, SpacePage, SpaceNormalized, page, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := Box{Left: 0.25, Top: 0.25, Right: 0.75, Bottom: 0.75}
	if !boxesAlmostEqual(norm, want) {
		t.Errorf("normalized = %+v, want %+v", norm, want)
	}

	back, err := Normalize(norm, SpaceNormalized, SpacePage, page, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !boxesAlmostEqual(back, b) {
		t.Errorf("round trip = %+v, want %+v", back, b)
	}
}

func TestNormalizeRejectsInvalidInput(t *testing.T) {
	page := Dims{Width: 600, Height: 800}

	if _, err := Normalize(Box{Left: 10, Right: 5, Bottom: 10}, SpacePage, SpaceModel, page, 0); err == nil {
		t.Error("expected error for inverted box")
	}
	if _, err := Normalize(Box{Right: 10, Bottom: 10}, SpacePage, SpaceModel, page, 45); err == nil {
		t.Error("expected error for unsupported rotation")
	}
}
