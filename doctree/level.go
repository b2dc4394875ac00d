package doctree

import "github.com/tsawler/docweave/model"

// LevelFunc infers a heading level (1 or greater) for a heading-class
// region. It is only consulted for Title and SectionHeader regions.
type LevelFunc func(model.Region) int

// Font-size ratios relative to body text for heading levels 1-6.
var headingRatios = []float64{1.8, 1.5, 1.3, 1.15, 1.1, 1.05}

// DefaultLevelFunc returns the default heading-level heuristic: Title
// regions are always level 1; SectionHeader regions are leveled by the
// ratio of their dominant font size to the body font size, clamped to
// levels 2-6. Regions without a font-size hint land at level 2.
func DefaultLevelFunc(bodyFontSize float64) LevelFunc {
	return func(r model.Region) int {
		if r.Class == model.ClassTitle {
			return 1
		}
		if r.FontSize <= 0 || bodyFontSize <= 0 {
			return 2
		}

		ratio := r.FontSize / bodyFontSize
		level := len(headingRatios)
		for i, min := range headingRatios {
			if ratio >= min {
				level = i + 1
				break
			}
		}
		if level < 2 {
			level = 2
		}
		return level
	}
}
