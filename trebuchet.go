// Package trebuchet provides a fluent API for extracting calibration values
// from text documents, HTML puzzle pages, and scanned images.
//
// Each line of a document yields a two-digit value formed from its first and
// last digit, where a digit is an ASCII digit or a spelled word "one".."nine".
// Overlapping words count: "eightwo" yields 82.
//
// Basic usage:
//
//	sum, warnings, err := trebuchet.Open("input.txt").Sum()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", trebuchet.FormatWarnings(warnings))
//	}
//
// With options:
//
//	sum, _, err := trebuchet.Open("day01.html").
//	    HTMLExample(1).
//	    Workers(4).
//	    Sum()
//
// For lower-level use, see the numeral and calibration packages.
package trebuchet

// Open returns an Extractor that reads filename when a terminal operation
// such as Sum runs. The format is taken from the extension, or sniffed from
// the content when the extension is not recognized.
//
// Example:
//
//	sum, warnings, err := trebuchet.Open("input.txt").Sum()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns an Extractor over an in-memory document. The format is
// sniffed from the content.
//
// Example:
//
//	sum, _, err := trebuchet.FromBytes(data).LiteralOnly().Sum()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    append([]byte(nil), data...),
		hasData: true,
		options: defaultOptions(),
	}
}

// FromString returns an Extractor over a plain text document.
//
// Example:
//
//	sum, _, err := trebuchet.FromString("two1nine\neightwothree\n").Sum()
func FromString(document string) *Extractor {
	return FromBytes([]byte(document))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := trebuchet.Must(htmldoc.Open("day01.html"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSum is a helper that wraps a call to Sum() or Lines() and panics
// if the error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	sum := trebuchet.MustSum(trebuchet.Open("input.txt").Sum())
func MustSum[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
