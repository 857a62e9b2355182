package trebuchet

import (
	"fmt"
	"strings"

	"github.com/tsawler/trebuchet/numeral"
)

// Warning is a non-fatal issue found in a document.
type Warning struct {
	Line    int // 1-indexed; 0 for the whole document
	Message string
}

// String returns "line N: message", or just the message for document warnings.
func (w Warning) String() string {
	if w.Line == 0 {
		return w.Message
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// FormatWarnings joins warnings into one human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// lineWarnings reports lines without any digit and lines holding non-ASCII
// bytes.
func lineWarnings(s *numeral.Scanner, lines []string) []Warning {
	var out []Warning
	for i, line := range lines {
		b := []byte(line)
		if !isASCII(b) {
			out = append(out, Warning{Line: i + 1, Message: "contains non-ASCII bytes"})
		}
		if _, ok := s.Scan(b, numeral.Forward); !ok {
			out = append(out, Warning{Line: i + 1, Message: "no digit found"})
		}
	}
	return out
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
