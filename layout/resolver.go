package layout

import (
	"sort"

	"github.com/tsawler/docweave/model"
)

// Config holds configuration for reading order resolution.
type Config struct {
	// BandOverlapThreshold is the minimum horizontal-span overlap ratio
	// (measured against the narrower region) for two regions to share a
	// band. Default: 0.5
	BandOverlapThreshold float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		BandOverlapThreshold: 0.5,
	}
}

// Resolver orders classified regions for reading.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with default configuration.
func NewResolver() *Resolver {
	return NewResolverWithConfig(DefaultConfig())
}

// NewResolverWithConfig creates a resolver with custom configuration.
func NewResolverWithConfig(config Config) *Resolver {
	return &Resolver{config: config}
}

// OrderPage returns one page's regions in reading order: page headers
// first, then band content left to right and top to bottom within each
// band, then page footers. The input slice is not modified.
func (r *Resolver) OrderPage(regions []model.Region) []model.Region {
	if len(regions) == 0 {
		return nil
	}

	var headers, body, footers []model.Region
	for _, reg := range regions {
		switch reg.Class {
		case model.ClassPageHeader:
			headers = append(headers, reg)
		case model.ClassPageFooter:
			footers = append(footers, reg)
		default:
			body = append(body, reg)
		}
	}

	sortTopDown(headers)
	sortTopDown(footers)

	bands := clusterBands(body, r.config.BandOverlapThreshold)

	// Bands read left to right by their leftmost edge.
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].left < bands[j].left
	})

	ordered := make([]model.Region, 0, len(regions))
	ordered = append(ordered, headers...)
	for _, b := range bands {
		sortTopDown(b.regions)
		ordered = append(ordered, b.regions...)
	}
	ordered = append(ordered, footers...)

	return ordered
}

// OrderDocument orders every page and concatenates them in page-index
// order, assigning each region a document-wide sequence number.
// Sequence numbers are strictly increasing across the whole document.
func (r *Resolver) OrderDocument(pages [][]model.Region) []model.OrderedRegion {
	var ordered []model.OrderedRegion

	seq := 0
	for _, regions := range pages {
		for _, reg := range r.OrderPage(regions) {
			ordered = append(ordered, model.OrderedRegion{
				Region:   reg,
				Sequence: seq,
			})
			seq++
		}
	}

	return ordered
}

// sortTopDown orders regions by top edge; ties break by left edge,
// then by detection index so the order is deterministic for identical
// geometry.
func sortTopDown(regions []model.Region) {
	sort.SliceStable(regions, func(i, j int) bool {
		a, b := regions[i], regions[j]
		if a.Box.Top != b.Box.Top {
			return a.Box.Top < b.Box.Top
		}
		if a.Box.Left != b.Box.Left {
			return a.Box.Left < b.Box.Left
		}
		return a.DetectionIndex < b.DetectionIndex
	})
}
