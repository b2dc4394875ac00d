package text

import (
	"sort"
	"strings"

	"github.com/tsawler/docweave/model"
)

// Config holds configuration for the text source merger.
type Config struct {
	// TokenOverlapThreshold is the minimum overlap ratio between a text
	// source box and the target area for the source to belong to it.
	// Default: 0.5.
	TokenOverlapThreshold float64

	// NativeCoverageThreshold is the fraction of the area's text-bearing
	// surface that native spans must cover for the native text layer to
	// be used exclusively. Below it, OCR tokens fill the gaps.
	// Default: 0.8.
	NativeCoverageThreshold float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		TokenOverlapThreshold:   0.5,
		NativeCoverageThreshold: 0.8,
	}
}

// Stats reports how an area's text was resolved.
type Stats struct {
	// NativeCoverage is the fraction of the text-bearing area covered by
	// native spans (1.0 when only native text exists, 0 when only OCR).
	NativeCoverage float64

	// UsedOCR is true when OCR tokens contributed to the result.
	UsedOCR bool

	// DroppedTokens counts candidate tokens that intersected the area
	// but fell below the overlap threshold or clipped to nothing.
	DroppedTokens int

	// Empty is true when neither source reported any text for the area.
	Empty bool

	// AvgNativeFontSize is the average font-size hint of the native
	// spans that contributed, or 0 when none did.
	AvgNativeFontSize float64
}

// Merger reconciles native text spans with OCR tokens.
type Merger struct {
	config Config
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return &Merger{config: DefaultConfig()}
}

// NewMergerWithConfig creates a merger with custom configuration.
func NewMergerWithConfig(config Config) *Merger {
	return &Merger{config: config}
}

// MergeRegion resolves a region's text in place, filling Tokens and the
// FontSize hint. Table regions are handled by the table assembler, not
// here; callers are expected to skip them.
func (m *Merger) MergeRegion(region *model.Region, spans []model.NativeSpan, ocrTokens []model.TextToken) Stats {
	tokens, stats := m.Merge(region.Box, spans, ocrTokens)
	region.Tokens = tokens
	region.FontSize = stats.AvgNativeFontSize
	return stats
}

// Merge resolves the text for an arbitrary page-space area (a region box
// or a table cell box). Native spans covering enough of the text-bearing
// area win outright; otherwise OCR tokens fill in, with native text
// taking precedence wherever both sources report the same sub-box.
// Every returned token lies within the area (clipped if necessary);
// tokens that clip to nothing are dropped and counted.
func (m *Merger) Merge(area model.Box, spans []model.NativeSpan, ocrTokens []model.TextToken) ([]model.TextToken, Stats) {
	var stats Stats

	native, fontSum, dropped := m.collectNative(area, spans)
	stats.DroppedTokens += dropped
	if len(native) > 0 {
		stats.AvgNativeFontSize = fontSum / float64(len(native))
	}

	ocr, dropped := m.collectOCR(area, ocrTokens)
	stats.DroppedTokens += dropped

	if len(native) == 0 && len(ocr) == 0 {
		stats.Empty = true
		return nil, stats
	}

	// An OCR token already accounted for by a native span does not add
	// to the text-bearing area and never appears in the result.
	uncovered := make([]model.TextToken, 0, len(ocr))
	for _, tok := range ocr {
		if !coveredByAny(tok.Box, native, m.config.TokenOverlapThreshold) {
			uncovered = append(uncovered, tok)
		}
	}

	nativeArea := totalArea(native)
	textBearing := nativeArea + totalArea(uncovered)
	if textBearing > 0 {
		stats.NativeCoverage = nativeArea / textBearing
	}

	var result []model.TextToken
	if len(ocr) == 0 || stats.NativeCoverage >= m.config.NativeCoverageThreshold {
		result = native
	} else {
		// OCR fallback: uncovered OCR tokens plus whatever native text
		// exists. Native wins on shared sub-boxes by construction.
		stats.UsedOCR = true
		result = append(append([]model.TextToken{}, native...), uncovered...)
	}

	orderTokens(result)
	return result, stats
}

// collectNative gathers native spans belonging to the area as tokens
// with confidence 1.0, clipped to the area.
func (m *Merger) collectNative(area model.Box, spans []model.NativeSpan) ([]model.TextToken, float64, int) {
	var tokens []model.TextToken
	fontSum := 0.0
	dropped := 0

	for _, span := range spans {
		if !span.Box.Intersects(area) {
			continue
		}
		if span.Box.OverlapRatio(area) < m.config.TokenOverlapThreshold {
			dropped++
			continue
		}
		clipped, ok := span.Box.Clip(area)
		if !ok {
			dropped++
			continue
		}
		tokens = append(tokens, model.TextToken{
			Text:       span.Text,
			Source:     model.SourceNative,
			Confidence: 1.0,
			Box:        clipped,
		})
		fontSum += span.FontSize
	}

	return tokens, fontSum, dropped
}

// collectOCR gathers OCR tokens belonging to the area, clipped to it.
func (m *Merger) collectOCR(area model.Box, ocrTokens []model.TextToken) ([]model.TextToken, int) {
	var tokens []model.TextToken
	dropped := 0

	for _, tok := range ocrTokens {
		if !tok.Box.Intersects(area) {
			continue
		}
		if tok.Box.OverlapRatio(area) < m.config.TokenOverlapThreshold {
			dropped++
			continue
		}
		clipped, ok := tok.Box.Clip(area)
		if !ok {
			dropped++
			continue
		}
		tok.Box = clipped
		tok.Source = model.SourceOCR
		tokens = append(tokens, tok)
	}

	return tokens, dropped
}

// coveredByAny reports whether a box overlaps any of the given tokens by
// at least the threshold.
func coveredByAny(box model.Box, tokens []model.TextToken, threshold float64) bool {
	for _, tok := range tokens {
		if box.OverlapRatio(tok.Box) >= threshold {
			return true
		}
	}
	return false
}

// totalArea sums the box areas of a token list.
func totalArea(tokens []model.TextToken) float64 {
	area := 0.0
	for _, tok := range tokens {
		area += tok.Box.Area()
	}
	return area
}

// tokenLine groups tokens sharing a visual line.
type tokenLine struct {
	top    float64
	tokens []model.TextToken
}

// orderTokens sorts tokens in place into reading order: lines top to
// bottom, then left to right within a line (right to left for lines
// whose text is predominantly RTL).
func orderTokens(tokens []model.TextToken) {
	if len(tokens) <= 1 {
		return
	}

	var lines []*tokenLine
	for _, tok := range tokens {
		placed := false
		for _, line := range lines {
			tolerance := tok.Box.Height() * 0.5
			if abs(tok.Box.Top-line.top) <= tolerance {
				line.tokens = append(line.tokens, tok)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, &tokenLine{top: tok.Box.Top, tokens: []model.TextToken{tok}})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].top < lines[j].top
	})

	out := tokens[:0]
	for _, line := range lines {
		rtl := lineDirection(line.tokens) == RTL
		sort.SliceStable(line.tokens, func(i, j int) bool {
			if rtl {
				return line.tokens[i].Box.Left > line.tokens[j].Box.Left
			}
			return line.tokens[i].Box.Left < line.tokens[j].Box.Left
		})
		out = append(out, line.tokens...)
	}
}

// lineDirection detects the dominant direction of a line's text.
func lineDirection(tokens []model.TextToken) Direction {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return DetectDirection(sb.String())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
