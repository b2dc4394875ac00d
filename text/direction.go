package text

import "golang.org/x/text/unicode/bidi"

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Neutral"
	}
}

// CharDirection returns the strong bidi direction of a single rune,
// or Neutral if the rune has no strong direction.
func CharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

// DetectDirection analyzes a string and returns its dominant direction
// based on strong directional characters, or Neutral if none are present.
func DetectDirection(s string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range s {
		switch CharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}
