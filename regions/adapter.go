package regions

import (
	"fmt"

	"github.com/tsawler/docweave/model"
)

// RawDetection is one entry of the layout model's output: a box in model
// pixel space, a class label string, and a confidence score.
type RawDetection struct {
	Box   model.Box
	Label string
	Score float64
}

// UnknownLabelPolicy controls what happens when the layout model emits a
// class label outside the fixed region class set.
type UnknownLabelPolicy int

const (
	// AbortOnUnknown surfaces an UnknownClassLabelError to the caller.
	AbortOnUnknown UnknownLabelPolicy = iota
	// MapUnknownToText coerces unknown labels to ClassText and records
	// the label in the result for warning purposes.
	MapUnknownToText
)

// Config holds configuration for the region classifier adapter.
type Config struct {
	// MinRegionConfidence is the confidence floor below which detections
	// are dropped. Default: 0.1.
	MinRegionConfidence float64

	// OnUnknownLabel selects the unknown-label policy.
	// Default: AbortOnUnknown.
	OnUnknownLabel UnknownLabelPolicy
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MinRegionConfidence: 0.1,
		OnUnknownLabel:      AbortOnUnknown,
	}
}

// Result holds the adapted regions plus bookkeeping for warnings.
type Result struct {
	// Regions in layout-model output order, boxes in page space.
	Regions []model.Region

	// DroppedLowConfidence counts detections below the confidence floor.
	DroppedLowConfidence int

	// MappedLabels lists unknown labels coerced to Text (only populated
	// under MapUnknownToText).
	MappedLabels []string
}

// Adapter wraps layout-model output into typed regions.
type Adapter struct {
	config Config
}

// NewAdapter creates an adapter with default configuration.
func NewAdapter() *Adapter {
	return &Adapter{config: DefaultConfig()}
}

// NewAdapterWithConfig creates an adapter with custom configuration.
func NewAdapterWithConfig(config Config) *Adapter {
	return &Adapter{config: config}
}

// Adapt converts raw detections for one page into typed regions. Boxes
// are normalized from model space into page space using the page's
// dimensions and rotation. Detections below the confidence floor are
// dropped and counted. Unknown class labels either abort (surfacing an
// UnknownClassLabelError) or map to Text, per configuration.
func (a *Adapter) Adapt(page model.Page, detections []RawDetection) (*Result, error) {
	result := &Result{}

	for i, det := range detections {
		if det.Score < a.config.MinRegionConfidence {
			result.DroppedLowConfidence++
			continue
		}

		class, err := ParseClassLabel(det.Label)
		if err != nil {
			if a.config.OnUnknownLabel == AbortOnUnknown {
				return nil, err
			}
			class = model.ClassText
			result.MappedLabels = append(result.MappedLabels, det.Label)
		}

		box, err := model.Normalize(det.Box, model.SpaceModel, model.SpacePage, page.Dims(), page.Rotation)
		if err != nil {
			// Malformed geometry is fatal for this detection only.
			return nil, fmt.Errorf("detection %d on page %d: %w", i, page.Index, err)
		}

		result.Regions = append(result.Regions, model.Region{
			Class:          class,
			Box:            box,
			Confidence:     clampScore(det.Score),
			PageIndex:      page.Index,
			DetectionIndex: i,
		})
	}

	return result, nil
}

// classLabels maps both the canonical class names and the label strings
// emitted by the layout model onto the closed class set. Formula, code,
// checkbox and document-index labels carry no dedicated node type and
// map to Text; pictures map to Figure.
var classLabels = map[string]model.RegionClass{
	"Text":          model.ClassText,
	"Title":         model.ClassTitle,
	"SectionHeader": model.ClassSectionHeader,
	"Table":         model.ClassTable,
	"Figure":        model.ClassFigure,
	"Caption":       model.ClassCaption,
	"ListItem":      model.ClassListItem,
	"Footnote":      model.ClassFootnote,
	"PageHeader":    model.ClassPageHeader,
	"PageFooter":    model.ClassPageFooter,

	"Section-header":     model.ClassSectionHeader,
	"Page-header":        model.ClassPageHeader,
	"Page-footer":        model.ClassPageFooter,
	"List-item":          model.ClassListItem,
	"Picture":            model.ClassFigure,
	"Formula":            model.ClassText,
	"Code":               model.ClassText,
	"Checkbox-Selected":  model.ClassText,
	"Checkbox-Unselected": model.ClassText,
	"Document Index":     model.ClassText,
}

// ParseClassLabel resolves a layout-model label to a region class.
// It fails with an UnknownClassLabelError for labels outside the set.
func ParseClassLabel(label string) (model.RegionClass, error) {
	if class, ok := classLabels[label]; ok {
		return class, nil
	}
	return model.ClassText, &model.UnknownClassLabelError{Label: label}
}

// clampScore clamps a model score into [0,1].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
