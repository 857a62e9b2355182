// Package format provides input format detection for calibration documents.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates a plain text document, one puzzle line per line.
	Text
	// HTML indicates an HTML page, such as a saved puzzle description.
	HTML
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a BMP image.
	BMP
	// WebP indicates a WebP image.
	WebP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tiff"
	case BMP:
		return ".bmp"
	case WebP:
		return ".webp"
	default:
		return ""
	}
}

// IsImage reports whether the format is an image that needs OCR.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, GIF, TIFF, BMP, WebP:
		return true
	}
	return false
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text", ".in", ".input":
		return Text
	case ".html", ".htm":
		return HTML
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".webp":
		return WebP
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Image and HTML signatures are checked first; anything else that looks like
// text (a byte order mark, or no NUL bytes) is Text.
func DetectFromMagic(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case len(data) >= 14 && bytes.HasPrefix(data, []byte("BM")) && bytes.Equal(data[6:10], []byte{0, 0, 0, 0}):
		return BMP
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return WebP
	}

	if DetectEncoding(data) != UTF8 {
		return Text
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	if bytes.IndexByte(data[:min(512, len(data))], 0) >= 0 {
		return Unknown
	}
	return Text
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

// DetectFromReader inspects up to the first 512 bytes of r.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
