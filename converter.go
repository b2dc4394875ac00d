package docweave

import (
	"context"
	"fmt"
	"sync"

	"github.com/tsawler/docweave/doctree"
	"github.com/tsawler/docweave/layout"
	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/raster"
	"github.com/tsawler/docweave/regions"
	"github.com/tsawler/docweave/tables"
	"github.com/tsawler/docweave/text"
)

// Converter reconstructs a document tree from a page source and model
// collaborators. A converter is safe for concurrent use; each Convert
// call owns its own per-page state.
type Converter struct {
	config    Config
	source    PageSource
	models    Models
	adapter   *regions.Adapter
	merger    *text.Merger
	assembler *tables.Assembler
	resolver  *layout.Resolver
	builder   *doctree.Builder
}

// NewConverter creates a converter with default configuration.
func NewConverter(source PageSource, models Models) *Converter {
	return NewConverterWithConfig(source, models, DefaultConfig())
}

// NewConverterWithConfig creates a converter with custom configuration.
func NewConverterWithConfig(source PageSource, models Models, config Config) *Converter {
	return &Converter{
		config:    config,
		source:    source,
		models:    models,
		adapter:   regions.NewAdapterWithConfig(config.adapterConfig()),
		merger:    text.NewMergerWithConfig(config.mergeConfig()),
		assembler: tables.NewAssemblerWithConfig(config.tableConfig()),
		resolver:  layout.NewResolverWithConfig(config.layoutConfig()),
		builder:   doctree.NewBuilderWithConfig(config.treeConfig()),
	}
}

// pageResult carries one page's extraction out of the parallel phase.
type pageResult struct {
	regions  []model.Region
	warnings []Warning
}

// Convert runs the full reconstruction pipeline and returns the
// document tree plus any warnings accumulated along the way. Page
// extraction runs in parallel; reading order resolution and tree
// building run sequentially over the collected pages. Per-region
// failures degrade that region and warn; a failing page source or
// layout model fails the whole conversion with a PageExtractionError
// naming the page.
func (c *Converter) Convert(ctx context.Context) (*model.DocumentNode, []Warning, error) {
	count, err := c.source.PageCount(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("counting pages: %w", err)
	}
	if c.config.MaxPages > 0 && count > c.config.MaxPages {
		count = c.config.MaxPages
	}

	results := make([]pageResult, count)
	errs := make([]error, count)

	var wg sync.WaitGroup
	sem := make(chan struct{}, c.config.concurrency())

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[index] = ctx.Err()
				return
			}

			results[index], errs[index] = c.convertPage(ctx, index)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	var warnings []Warning
	pages := make([][]model.Region, count)
	for i, res := range results {
		pages[i] = res.regions
		warnings = append(warnings, res.warnings...)
	}

	ordered := c.resolver.OrderDocument(pages)
	return c.builder.Build(ordered), warnings, nil
}

// convertPage runs the page-local pipeline: classify regions, resolve
// text per region, assemble tables.
func (c *Converter) convertPage(ctx context.Context, index int) (pageResult, error) {
	var result pageResult

	page, err := c.source.Page(ctx, index)
	if err != nil {
		return result, &model.PageExtractionError{PageIndex: index, Err: err}
	}

	detections, err := c.models.Layout.DetectRegions(ctx, page.Raster)
	if err != nil {
		return result, &model.PageExtractionError{PageIndex: index, Err: err}
	}

	adapted, err := c.adapter.Adapt(page, detections)
	if err != nil {
		return result, &model.PageExtractionError{PageIndex: index, Err: err}
	}

	if adapted.DroppedLowConfidence > 0 {
		result.warnings = append(result.warnings, Warning{
			Kind:      WarnRegionDropped,
			PageIndex: index,
			Message:   fmt.Sprintf("%d detections below confidence %.2f", adapted.DroppedLowConfidence, c.config.MinRegionConfidence),
		})
	}
	for _, label := range adapted.MappedLabels {
		result.warnings = append(result.warnings, Warning{
			Kind:      WarnUnknownLabelMapped,
			PageIndex: index,
			Message:   fmt.Sprintf("label %q mapped to Text", label),
		})
	}

	for i := range adapted.Regions {
		region := &adapted.Regions[i]

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		switch region.Class {
		case model.ClassTable:
			result.warnings = append(result.warnings, c.convertTable(ctx, page, region)...)
		case model.ClassFigure:
			// Figures carry no text; captions arrive as their own regions.
		default:
			result.warnings = append(result.warnings, c.resolveText(page, region)...)
		}
	}

	result.regions = adapted.Regions
	return result, nil
}

// resolveText fills a region's tokens from the native layer, falling
// back to OCR when native coverage is too thin and an engine is wired.
func (c *Converter) resolveText(page model.Page, region *model.Region) []Warning {
	var warnings []Warning

	var ocrTokens []model.TextToken
	if c.models.OCR != nil && c.nativeAreaCoverage(page, *region) < c.config.NativeCoverageThreshold {
		var warn *Warning
		ocrTokens, warn = c.regionOCRTokens(page, *region)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
	}

	stats := c.merger.MergeRegion(region, page.Spans, ocrTokens)

	if stats.Empty {
		warnings = append(warnings, Warning{
			Kind:      WarnMissingTextSource,
			PageIndex: page.Index,
			Message:   fmt.Sprintf("%s region at %v has no text from any source", region.Class, region.Box),
		})
	}
	if stats.DroppedTokens > 0 {
		warnings = append(warnings, Warning{
			Kind:      WarnTokensDropped,
			PageIndex: page.Index,
			Message:   fmt.Sprintf("%d tokens dropped resolving %s region", stats.DroppedTokens, region.Class),
		})
	}

	return warnings
}

// convertTable assembles a table region's cell grid. Any failure along
// the way degrades the region to plain text instead of aborting the
// conversion.
func (c *Converter) convertTable(ctx context.Context, page model.Page, region *model.Region) []Warning {
	degrade := func(reason string) []Warning {
		region.Class = model.ClassText
		warnings := []Warning{{
			Kind:      WarnTableDegraded,
			PageIndex: page.Index,
			Message:   reason,
		}}
		return append(warnings, c.resolveText(page, region)...)
	}

	if c.models.Table == nil {
		return degrade("no table model wired; table region downgraded to text")
	}

	crop, err := raster.CropRegion(page, *region)
	if err != nil {
		return degrade(fmt.Sprintf("cropping table region: %v", err))
	}

	rawCells, err := c.models.Table.RecognizeCells(ctx, crop)
	if err != nil {
		return degrade(fmt.Sprintf("table model: %v", err))
	}

	// The table model sees only the crop; anchor its cell boxes back
	// into full-page model space before assembly.
	mbox, err := model.Normalize(region.Box, model.SpacePage, model.SpaceModel, page.Dims(), page.Rotation)
	if err != nil {
		return degrade(fmt.Sprintf("table region box: %v", err))
	}
	for i := range rawCells {
		rawCells[i].Box = rawCells[i].Box.Translate(mbox.Left, mbox.Top)
	}

	var warnings []Warning
	var ocrTokens []model.TextToken
	if c.models.OCR != nil && c.nativeAreaCoverage(page, *region) < c.config.NativeCoverageThreshold {
		var warn *Warning
		ocrTokens, warn = c.regionOCRTokens(page, *region)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
	}

	assembled, err := c.assembler.Assemble(*region, page, rawCells, ocrTokens)
	if err != nil {
		return append(warnings, degrade(fmt.Sprintf("assembling table: %v", err))...)
	}

	region.Table = assembled.Table

	if len(assembled.Faults) > 0 {
		warnings = append(warnings, Warning{
			Kind:      WarnTableDegraded,
			PageIndex: page.Index,
			Message:   fmt.Sprintf("table grid repaired: %d inconsistencies (%v)", len(assembled.Faults), assembled.Faults[0]),
		})
	}
	if assembled.DroppedTokens > 0 {
		warnings = append(warnings, Warning{
			Kind:      WarnTokensDropped,
			PageIndex: page.Index,
			Message:   fmt.Sprintf("%d tokens dropped resolving table cells", assembled.DroppedTokens),
		})
	}

	return warnings
}

// regionOCRTokens crops a region out of the page raster, runs OCR over
// it and maps the crop-local token boxes back into page space. A
// failure returns a warning instead of an error: the region keeps its
// native text.
func (c *Converter) regionOCRTokens(page model.Page, region model.Region) ([]model.TextToken, *Warning) {
	fail := func(err error) ([]model.TextToken, *Warning) {
		return nil, &Warning{
			Kind:      WarnOCRFailed,
			PageIndex: page.Index,
			Message:   fmt.Sprintf("OCR for %s region at %v: %v", region.Class, region.Box, err),
		}
	}

	crop, err := raster.CropRegion(page, region)
	if err != nil {
		return fail(err)
	}

	tokens, err := c.models.OCR.Recognize(crop)
	if err != nil {
		return fail(err)
	}

	mbox, err := model.Normalize(region.Box, model.SpacePage, model.SpaceModel, page.Dims(), page.Rotation)
	if err != nil {
		return fail(err)
	}

	mapped := make([]model.TextToken, 0, len(tokens))
	for _, tok := range tokens {
		modelBox := tok.Box.Translate(mbox.Left, mbox.Top)
		pageBox, err := model.Normalize(modelBox, model.SpaceModel, model.SpacePage, page.Dims(), page.Rotation)
		if err != nil {
			continue
		}
		tok.Box = pageBox
		tok.Source = model.SourceOCR
		mapped = append(mapped, tok)
	}
	return mapped, nil
}

// nativeAreaCoverage estimates how much of a region's area the native
// text layer covers, to decide whether OCR is worth invoking at all.
func (c *Converter) nativeAreaCoverage(page model.Page, region model.Region) float64 {
	area := region.Box.Area()
	if area <= 0 {
		return 0
	}

	covered := 0.0
	for _, span := range page.Spans {
		if span.Box.OverlapRatio(region.Box) < c.config.TokenOverlapThreshold {
			continue
		}
		if clipped, ok := span.Box.Clip(region.Box); ok {
			covered += clipped.Area()
		}
	}

	ratio := covered / area
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
