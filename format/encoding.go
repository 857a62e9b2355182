package format

import "bytes"

// Encoding is the character encoding of a text document, as signalled by its
// byte order mark.
type Encoding int

const (
	// UTF8 is UTF-8 (or ASCII) without a byte order mark.
	UTF8 Encoding = iota
	// UTF8BOM is UTF-8 with a leading byte order mark.
	UTF8BOM
	// UTF16LE is little-endian UTF-16 with a byte order mark.
	UTF16LE
	// UTF16BE is big-endian UTF-16 with a byte order mark.
	UTF16BE
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF8BOM:
		return "UTF-8 (BOM)"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return "Unknown"
	}
}

// DetectEncoding reports the encoding named by data's byte order mark.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return UTF8BOM
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return UTF16LE
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return UTF16BE
	default:
		return UTF8
	}
}
