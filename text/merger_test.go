package text

import (
	"testing"

	"github.com/tsawler/docweave/model"
)

func span(text string, left, top, right, bottom float64) model.NativeSpan {
	return model.NativeSpan{
		Text:     text,
		Box:      model.Box{Left: left, Top: top, Right: right, Bottom: bottom},
		FontSize: 12,
	}
}

func ocrToken(text string, left, top, right, bottom float64, conf float64) model.TextToken {
	return model.TextToken{
		Text:       text,
		Source:     model.SourceOCR,
		Confidence: conf,
		Box:        model.Box{Left: left, Top: top, Right: right, Bottom: bottom},
	}
}

func TestMergeNativeOnlyResolvesAllNative(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 200, Bottom: 100}
	spans := []model.NativeSpan{
		span("Hello", 10, 10, 60, 22),
		span("world", 70, 10, 120, 22),
	}

	tokens, stats := m.Merge(area, spans, nil)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Source != model.SourceNative {
			t.Errorf("token %q source = %s, want native", tok.Text, tok.Source)
		}
		if tok.Confidence != 1.0 {
			t.Errorf("native token %q confidence = %f, want 1.0", tok.Text, tok.Confidence)
		}
	}
	if stats.NativeCoverage != 1.0 {
		t.Errorf("NativeCoverage = %f, want 1.0", stats.NativeCoverage)
	}
	if stats.UsedOCR {
		t.Error("UsedOCR should be false for native-only input")
	}
	if stats.AvgNativeFontSize != 12 {
		t.Errorf("AvgNativeFontSize = %f, want 12", stats.AvgNativeFontSize)
	}
}

func TestMergeFallsBackToOCRWhenCoverageLow(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 200, Bottom: 100}
	ocr := []model.TextToken{
		ocrToken("scanned", 10, 10, 90, 22, 0.85),
		ocrToken("text", 100, 10, 150, 22, 0.9),
	}

	tokens, stats := m.Merge(area, nil, ocr)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Source != model.SourceOCR {
			t.Errorf("token %q source = %s, want ocr", tok.Text, tok.Source)
		}
	}
	if !stats.UsedOCR {
		t.Error("UsedOCR should be true")
	}
	if stats.NativeCoverage != 0 {
		t.Errorf("NativeCoverage = %f, want 0", stats.NativeCoverage)
	}
}

func TestMergeNativeWinsOnSharedSubBox(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 400, Bottom: 100}

	// One small native span, lots of OCR. Coverage is far below the 0.8
	// threshold, so OCR mode kicks in, but the OCR token duplicating the
	// native span's sub-box must lose to the native text.
	spans := []model.NativeSpan{span("Exact", 10, 10, 60, 22)}
	ocr := []model.TextToken{
		ocrToken("Exakt", 11, 10, 61, 22, 0.7), // same sub-box, misread
		ocrToken("other", 100, 10, 380, 60, 0.8),
	}

	tokens, stats := m.Merge(area, spans, ocr)
	if !stats.UsedOCR {
		t.Fatal("expected OCR fallback")
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens (native + uncovered ocr), got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Text == "Exakt" {
			t.Error("duplicate OCR token should have lost to the native span")
		}
	}
}

func TestMergeHonorsCoverageThresholdConfig(t *testing.T) {
	config := DefaultConfig()
	config.NativeCoverageThreshold = 0.3
	m := NewMergerWithConfig(config)

	area := model.Box{Left: 0, Top: 0, Right: 400, Bottom: 100}
	spans := []model.NativeSpan{span("native", 10, 10, 160, 40)} // ~37% of text-bearing area
	ocr := []model.TextToken{ocrToken("rest", 200, 10, 390, 50, 0.8)}

	tokens, stats := m.Merge(area, spans, ocr)
	if stats.UsedOCR {
		t.Errorf("with lowered threshold, native should win (coverage %f)", stats.NativeCoverage)
	}
	if len(tokens) != 1 || tokens[0].Source != model.SourceNative {
		t.Errorf("expected only the native token, got %v", tokens)
	}
}

func TestMergeClipsTokensToArea(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 100, Bottom: 100}
	// Span hangs over the right edge but overlaps well over 50%.
	spans := []model.NativeSpan{span("wide", 40, 10, 110, 22)}

	tokens, _ := m.Merge(area, spans, nil)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if !area.Contains(tokens[0].Box) {
		t.Errorf("token box %+v should lie within area %+v", tokens[0].Box, area)
	}
	if tokens[0].Box.Right != 100 {
		t.Errorf("expected right edge clipped to 100, got %f", tokens[0].Box.Right)
	}
}

func TestMergeCountsDroppedTokens(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 100, Bottom: 100}
	// Span mostly outside: overlap ratio below 0.5, but intersecting.
	spans := []model.NativeSpan{
		span("outside", 90, 10, 200, 22),
		span("inside", 10, 10, 60, 22),
	}

	tokens, stats := m.Merge(area, spans, nil)
	if len(tokens) != 1 || tokens[0].Text != "inside" {
		t.Fatalf("expected only the inside token, got %v", tokens)
	}
	if stats.DroppedTokens != 1 {
		t.Errorf("DroppedTokens = %d, want 1", stats.DroppedTokens)
	}
}

func TestMergeEmptyArea(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 100, Bottom: 100}

	tokens, stats := m.Merge(area, nil, nil)
	if tokens != nil {
		t.Errorf("expected nil tokens, got %v", tokens)
	}
	if !stats.Empty {
		t.Error("Stats.Empty should be true when neither source has text")
	}
}

func TestMergeOrdersTokensLineThenLeftToRight(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 300, Bottom: 100}
	// Deliberately shuffled input.
	spans := []model.NativeSpan{
		span("second", 100, 10, 180, 22),
		span("fourth", 100, 40, 180, 52),
		span("first", 10, 11, 90, 23),
		span("third", 10, 41, 90, 53),
	}

	tokens, _ := m.Merge(area, spans, nil)
	want := []string{"first", "second", "third", "fourth"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d = %q, want %q", i, tokens[i].Text, w)
		}
	}
}

func TestMergeOrdersRTLLineRightToLeft(t *testing.T) {
	m := NewMerger()
	area := model.Box{Left: 0, Top: 0, Right: 300, Bottom: 50}
	spans := []model.NativeSpan{
		span("שלום", 10, 10, 80, 22),
		span("עולם", 100, 10, 170, 22),
	}

	tokens, _ := m.Merge(area, spans, nil)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	// Rightmost token reads first in an RTL line.
	if tokens[0].Box.Left != 100 {
		t.Errorf("expected rightmost token first for RTL text, got %q at %f", tokens[0].Text, tokens[0].Box.Left)
	}
}
