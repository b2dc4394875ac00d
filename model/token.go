package model

import "strings"

// TokenSource tags where a resolved text token came from.
type TokenSource int

const (
	// SourceNative marks text taken from the PDF's native text layer.
	SourceNative TokenSource = iota
	// SourceOCR marks text recognized from the page raster.
	SourceOCR
)

// String returns a string representation of the token source.
func (s TokenSource) String() string {
	if s == SourceOCR {
		return "ocr"
	}
	return "native"
}

// TextToken is a resolved text unit inside a region. Native tokens carry
// confidence 1.0; OCR tokens carry the recognizer's confidence.
type TextToken struct {
	Text       string
	Source     TokenSource
	Confidence float64
	Box        Box
}

// TokensText joins ordered tokens into a single string. Tokens on the
// same visual line are separated by spaces; a token whose top edge lies
// below the previous token's bottom edge starts a new line.
func TokensText(tokens []TextToken) string {
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			if tok.Box.Top >= tokens[i-1].Box.Bottom {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
