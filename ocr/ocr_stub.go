//go:build !ocr

// Package ocr reads calibration documents that only exist as scanned or
// photographed images.
//
// This build has no recognizer: NewRecognizer and Recognize return
// ErrOCRNotEnabled. Prepare works either way. Rebuild with the "ocr" tag,
// with Tesseract installed, to enable recognition:
//
//	go build -tags ocr ./...
package ocr

// Recognizer is unavailable without the "ocr" build tag.
type Recognizer struct{}

// NewRecognizer returns ErrOCRNotEnabled.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing.
func (r *Recognizer) Close() error {
	return nil
}

// Recognize returns ErrOCRNotEnabled.
func (r *Recognizer) Recognize(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
