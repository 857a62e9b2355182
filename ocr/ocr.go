//go:build ocr

// Package ocr reads calibration documents that only exist as scanned or
// photographed images.
//
// Recognition uses the Tesseract engine through gosseract, which needs
// Tesseract installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer turns calibration sheet images into text, one calibration line
// per output line. A Recognizer is not safe for concurrent use.
type Recognizer struct {
	client *gosseract.Client
}

// NewRecognizer returns a Recognizer configured by cfg.
// Close it when done to release the Tesseract handle.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(cfg.languages()...); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting OCR language %q: %w", cfg.Language, err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.PageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting OCR page mode %d: %w", cfg.PageSegMode, err)
	}
	if cfg.Whitelist != "" {
		if err := client.SetWhitelist(cfg.Whitelist); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting OCR whitelist: %w", err)
		}
	}

	return &Recognizer{client: client}, nil
}

// Close releases the Tesseract handle. It is safe to call more than once.
func (r *Recognizer) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	err := r.client.Close()
	r.client = nil
	return err
}

// Recognize returns the calibration lines found in imageData, which should
// already have been through Prepare.
func (r *Recognizer) Recognize(imageData []byte) (string, error) {
	if err := r.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("loading image for OCR: %w", err)
	}

	text, err := r.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return normalizeLines(text), nil
}
