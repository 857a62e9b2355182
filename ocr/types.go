package ocr

import (
	"errors"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// CalibrationWhitelist holds every character a calibration line can contain
// that matters to the scanner.
const CalibrationWhitelist = "abcdefghijklmnopqrstuvwxyz0123456789"

// PageSegMode is a Tesseract page segmentation mode.
type PageSegMode int

// Page segmentation modes used for calibration scans, numbered as Tesseract
// numbers them.
const (
	PSM_AUTO         PageSegMode = 3  // Fully automatic
	PSM_SINGLE_BLOCK PageSegMode = 6  // One uniform block of text, the usual calibration sheet
	PSM_SINGLE_LINE  PageSegMode = 7  // A single calibration line
	PSM_SPARSE_TEXT  PageSegMode = 11 // Scattered text, for photos of notes
)

// Config controls a Recognizer.
type Config struct {
	// Language is one or more Tesseract language codes joined by "+".
	Language string

	PageSegMode PageSegMode

	// Whitelist limits the characters Tesseract may emit. Empty allows all.
	Whitelist string
}

// DefaultConfig reads English calibration sheets.
func DefaultConfig() Config {
	return Config{
		Language:    "eng",
		PageSegMode: PSM_SINGLE_BLOCK,
		Whitelist:   CalibrationWhitelist,
	}
}

// languages splits a "+" joined language list, dropping empty entries.
func (c Config) languages() []string {
	var out []string
	for _, l := range strings.Split(c.Language, "+") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		out = []string{"eng"}
	}
	return out
}

// normalizeLines turns raw recognizer output into calibration lines: each
// line trimmed, blank lines dropped, letters lowercased.
func normalizeLines(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
