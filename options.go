package docweave

import (
	"runtime"

	"github.com/tsawler/docweave/doctree"
	"github.com/tsawler/docweave/layout"
	"github.com/tsawler/docweave/regions"
	"github.com/tsawler/docweave/tables"
	"github.com/tsawler/docweave/text"
)

// Config holds configuration for a conversion.
type Config struct {
	// MinRegionConfidence is the layout-model confidence floor below
	// which detections are dropped. Default: 0.1
	MinRegionConfidence float64

	// OnUnknownLabel selects what happens when the layout model emits a
	// label outside the known class set. Default: abort the conversion.
	OnUnknownLabel regions.UnknownLabelPolicy

	// TokenOverlapThreshold is the minimum overlap ratio for a text
	// source to belong to a region or cell. Default: 0.5
	TokenOverlapThreshold float64

	// NativeCoverageThreshold is the native-text coverage above which a
	// region uses the native layer exclusively. Default: 0.8
	NativeCoverageThreshold float64

	// BandOverlapThreshold is the horizontal-span overlap ratio above
	// which two regions share a column band. Default: 0.5
	BandOverlapThreshold float64

	// BodyFontSize is the reference body text size for the heading-level
	// heuristic. Default: 12.0
	BodyFontSize float64

	// Level overrides the heading-level heuristic. When nil, the default
	// font-ratio heuristic is used.
	Level doctree.LevelFunc

	// MaxConcurrency caps the number of pages processed in parallel.
	// Default: runtime.NumCPU()
	MaxConcurrency int

	// MaxPages limits how many pages are converted. 0 means all pages.
	MaxPages int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MinRegionConfidence:     0.1,
		OnUnknownLabel:          regions.AbortOnUnknown,
		TokenOverlapThreshold:   0.5,
		NativeCoverageThreshold: 0.8,
		BandOverlapThreshold:    0.5,
		BodyFontSize:            12.0,
		MaxConcurrency:          runtime.NumCPU(),
		MaxPages:                0,
	}
}

// adapterConfig derives the region adapter's configuration.
func (c Config) adapterConfig() regions.Config {
	return regions.Config{
		MinRegionConfidence: c.MinRegionConfidence,
		OnUnknownLabel:      c.OnUnknownLabel,
	}
}

// mergeConfig derives the text merger's configuration.
func (c Config) mergeConfig() text.Config {
	return text.Config{
		TokenOverlapThreshold:   c.TokenOverlapThreshold,
		NativeCoverageThreshold: c.NativeCoverageThreshold,
	}
}

// tableConfig derives the table assembler's configuration.
func (c Config) tableConfig() tables.Config {
	return tables.Config{Merge: c.mergeConfig()}
}

// layoutConfig derives the reading order resolver's configuration.
func (c Config) layoutConfig() layout.Config {
	return layout.Config{BandOverlapThreshold: c.BandOverlapThreshold}
}

// treeConfig derives the tree builder's configuration.
func (c Config) treeConfig() doctree.Config {
	return doctree.Config{
		BodyFontSize: c.BodyFontSize,
		Level:        c.Level,
	}
}

// concurrency returns the effective page-level parallelism.
func (c Config) concurrency() int {
	if c.MaxConcurrency > 0 {
		return c.MaxConcurrency
	}
	return runtime.NumCPU()
}
