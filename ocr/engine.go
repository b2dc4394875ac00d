//go:build ocr

// Package ocr recognizes text in raster crops via the Tesseract engine
// wrapped by gosseract, returning word-level tokens with boxes and
// confidences.
//
// This implementation is compiled with the "ocr" build tag and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/docweave/model"
)

// Engine wraps a Tesseract client. It is not safe for concurrent use;
// create one engine per worker.
type Engine struct {
	client *gosseract.Client
}

// New creates an OCR engine. The engine should be closed when no longer
// needed to release Tesseract resources.
func New() (*Engine, error) {
	return &Engine{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages
// are "+" separated (e.g. "eng+fra"). Default is "eng".
func (e *Engine) SetLanguage(lang string) error {
	return e.client.SetLanguage(lang)
}

// Recognize runs word-level OCR over an image crop. Token boxes are in
// the crop's own coordinate space with a top-left origin; the caller
// translates them back into page space. Confidences are scaled to [0,1].
func (e *Engine) Recognize(img image.Image) ([]model.TextToken, error) {
	if img == nil {
		return nil, fmt.Errorf("recognizing nil image")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding crop: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognizing words: %w", err)
	}

	tokens := make([]model.TextToken, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		tokens = append(tokens, model.TextToken{
			Text:       b.Word,
			Source:     model.SourceOCR,
			Confidence: b.Confidence / 100.0,
			Box: model.NewBox(
				float64(b.Box.Min.X),
				float64(b.Box.Min.Y),
				float64(b.Box.Max.X),
				float64(b.Box.Max.Y),
			),
		})
	}
	return tokens, nil
}
