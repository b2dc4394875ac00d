package regions

import (
	"errors"
	"testing"

	"github.com/tsawler/docweave/model"
)

func testPage() model.Page {
	return model.Page{Index: 0, Width: 600, Height: 800}
}

func TestAdaptMapsLabelsAndKeepsOrder(t *testing.T) {
	adapter := NewAdapter()
	detections := []RawDetection{
		{Box: model.Box{Left: 10, Top: 10, Right: 100, Bottom: 40}, Label: "Title", Score: 0.95},
		{Box: model.Box{Left: 10, Top: 50, Right: 100, Bottom: 200}, Label: "Text", Score: 0.9},
		{Box: model.Box{Left: 10, Top: 210, Right: 100, Bottom: 400}, Label: "Section-header", Score: 0.8},
	}

	result, err := adapter.Adapt(testPage(), detections)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(result.Regions))
	}

	wantClasses := []model.RegionClass{model.ClassTitle, model.ClassText, model.ClassSectionHeader}
	for i, want := range wantClasses {
		if result.Regions[i].Class != want {
			t.Errorf("region %d class = %s, want %s", i, result.Regions[i].Class, want)
		}
		if result.Regions[i].DetectionIndex != i {
			t.Errorf("region %d detection index = %d, want %d", i, result.Regions[i].DetectionIndex, i)
		}
	}
}

func TestAdaptDropsLowConfidence(t *testing.T) {
	adapter := NewAdapter() // MinRegionConfidence = 0.1
	detections := []RawDetection{
		{Box: model.Box{Left: 0, Top: 0, Right: 50, Bottom: 50}, Label: "Text", Score: 0.05},
		{Box: model.Box{Left: 0, Top: 60, Right: 50, Bottom: 100}, Label: "Text", Score: 0.5},
	}

	result, err := adapter.Adapt(testPage(), detections)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Regions) != 1 {
		t.Fatalf("expected 1 region after confidence filtering, got %d", len(result.Regions))
	}
	if result.DroppedLowConfidence != 1 {
		t.Errorf("DroppedLowConfidence = %d, want 1", result.DroppedLowConfidence)
	}
	// The surviving detection keeps its original index
	if result.Regions[0].DetectionIndex != 1 {
		t.Errorf("DetectionIndex = %d, want 1", result.Regions[0].DetectionIndex)
	}
}

func TestAdaptConfidenceThresholdIsConfigurable(t *testing.T) {
	config := DefaultConfig()
	config.MinRegionConfidence = 0.6
	adapter := NewAdapterWithConfig(config)

	detections := []RawDetection{
		{Box: model.Box{Left: 0, Top: 0, Right: 50, Bottom: 50}, Label: "Text", Score: 0.5},
	}
	result, err := adapter.Adapt(testPage(), detections)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Regions) != 0 || result.DroppedLowConfidence != 1 {
		t.Errorf("expected region dropped under raised threshold, got %+v", result)
	}
}

func TestAdaptUnknownLabelAborts(t *testing.T) {
	adapter := NewAdapter()
	detections := []RawDetection{
		{Box: model.Box{Left: 0, Top: 0, Right: 50, Bottom: 50}, Label: "Hologram", Score: 0.9},
	}

	_, err := adapter.Adapt(testPage(), detections)
	if err == nil {
		t.Fatal("expected UnknownClassLabelError")
	}
	var unknownErr *model.UnknownClassLabelError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *model.UnknownClassLabelError, got %T", err)
	}
	if unknownErr.Label != "Hologram" {
		t.Errorf("Label = %q, want %q", unknownErr.Label, "Hologram")
	}
}

func TestAdaptUnknownLabelMapsToText(t *testing.T) {
	config := DefaultConfig()
	config.OnUnknownLabel = MapUnknownToText
	adapter := NewAdapterWithConfig(config)

	detections := []RawDetection{
		{Box: model.Box{Left: 0, Top: 0, Right: 50, Bottom: 50}, Label: "Hologram", Score: 0.9},
	}
	result, err := adapter.Adapt(testPage(), detections)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Regions) != 1 || result.Regions[0].Class != model.ClassText {
		t.Fatalf("expected unknown label mapped to Text, got %+v", result.Regions)
	}
	if len(result.MappedLabels) != 1 || result.MappedLabels[0] != "Hologram" {
		t.Errorf("MappedLabels = %v", result.MappedLabels)
	}
}

func TestAdaptNormalizesRotatedBoxes(t *testing.T) {
	page := model.Page{Index: 0, Width: 600, Height: 800, Rotation: 90}
	// Model space for a 90-degree rotated 600x800 page is 800x600.
	// A box at the raster's top-right corner is the page's top-left corner.
	detections := []RawDetection{
		{Box: model.Box{Left: 790, Top: 0, Right: 800, Bottom: 10}, Label: "Text", Score: 0.9},
	}

	result, err := NewAdapter().Adapt(page, detections)
	if err != nil {
		t.Fatal(err)
	}
	got := result.Regions[0].Box
	if got.Left != 0 || got.Top != 0 {
		t.Errorf("expected box at page origin after un-rotation, got %+v", got)
	}
}

func TestParseClassLabelDoclingAliases(t *testing.T) {
	cases := map[string]model.RegionClass{
		"Picture":        model.ClassFigure,
		"Formula":        model.ClassText,
		"List-item":      model.ClassListItem,
		"Page-footer":    model.ClassPageFooter,
		"Document Index": model.ClassText,
	}
	for label, want := range cases {
		got, err := ParseClassLabel(label)
		if err != nil {
			t.Errorf("ParseClassLabel(%q) error: %v", label, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClassLabel(%q) = %s, want %s", label, got, want)
		}
	}
}
