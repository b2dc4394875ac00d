//go:build !ocr

// Package ocr recognizes text in raster crops via the Tesseract engine
// wrapped by gosseract, returning word-level tokens with boxes and
// confidences.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return ErrOCRNotEnabled. To enable OCR, rebuild
// with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"errors"
	"image"

	"github.com/tsawler/docweave/model"
)

// ErrOCRNotEnabled is returned when OCR is invoked but support was not
// compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Engine is a stub OCR engine that fails every operation.
type Engine struct{}

// New returns ErrOCRNotEnabled.
func New() (*Engine, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub engine. Safe to call on nil.
func (e *Engine) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (e *Engine) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Recognize returns ErrOCRNotEnabled.
func (e *Engine) Recognize(img image.Image) ([]model.TextToken, error) {
	return nil, ErrOCRNotEnabled
}
