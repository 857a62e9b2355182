package trebuchet

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/trebuchet/calibration"
	"github.com/tsawler/trebuchet/format"
	"github.com/tsawler/trebuchet/numeral"
)

// Extractor provides a fluent interface for computing calibration values.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	hasData  bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		hasData:  e.hasData,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Words recognizes spelled digits "one".."nine" as well as literal digits.
// This is the default.
//
// Example:
//
//	sum, _, err := trebuchet.Open("input.txt").Words().Sum()
func (e *Extractor) Words() *Extractor {
	return e.Table(numeral.DefaultTable())
}

// LiteralOnly recognizes literal digit characters only.
//
// Example:
//
//	sum, _, err := trebuchet.Open("input.txt").LiteralOnly().Sum()
func (e *Extractor) LiteralOnly() *Extractor {
	newExt := e.clone()
	newExt.options.table = nil
	return newExt
}

// Table recognizes the words in t as well as literal digits. A nil table is
// the same as LiteralOnly.
func (e *Extractor) Table(t *numeral.WordTable) *Extractor {
	newExt := e.clone()
	newExt.options.table = t
	return newExt
}

// Workers sets how many goroutines sum lines in parallel.
//
// Example:
//
//	sum, _, err := trebuchet.Open("big.txt").Workers(8).Sum()
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		n = 1
	}
	newExt.options.workers = n
	return newExt
}

// HTMLExample selects the i-th example block (0-indexed) of an HTML puzzle
// page, counting only blocks inside <article> elements. The default is 0.
//
// Example:
//
//	sum, _, err := trebuchet.Open("day01.html").HTMLExample(1).Sum()
func (e *Extractor) HTMLExample(i int) *Extractor {
	newExt := e.clone()
	if i < 0 {
		newExt.err = fmt.Errorf("invalid HTML example index %d", i)
		return newExt
	}
	newExt.options.htmlBlock = -1
	newExt.options.htmlExample = i
	return newExt
}

// HTMLBlock selects the i-th <pre> block (0-indexed) of an HTML page,
// counting every block on the page.
func (e *Extractor) HTMLBlock(i int) *Extractor {
	newExt := e.clone()
	if i < 0 {
		newExt.err = fmt.Errorf("invalid HTML block index %d", i)
		return newExt
	}
	newExt.options.htmlBlock = i
	return newExt
}

// OCRLanguage sets the Tesseract language used for image inputs.
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// MinImageHeight sets the height small image inputs are scaled up to before OCR.
func (e *Extractor) MinImageHeight(px int) *Extractor {
	newExt := e.clone()
	newExt.options.minHeight = px
	return newExt
}

// Context sets the context that bounds a parallel sum.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	if ctx == nil {
		ctx = context.Background()
	}
	newExt.options.ctx = ctx
	return newExt
}

// Logger sets the logger. A nil logger disables logging.
func (e *Extractor) Logger(l *zap.Logger) *Extractor {
	newExt := e.clone()
	if l == nil {
		l = zap.NewNop()
	}
	newExt.options.logger = l
	return newExt
}

// Metrics records scan results in m.
func (e *Extractor) Metrics(m *calibration.Metrics) *Extractor {
	newExt := e.clone()
	newExt.options.metrics = m
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text returns the calibration document as plain text: the decoded file, the
// selected HTML block, or the OCR result of an image.
//
// Example:
//
//	text, _, err := trebuchet.Open("day01.html").Text()
func (e *Extractor) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	doc, err := e.load()
	if err != nil {
		return "", nil, err
	}
	return doc.text, doc.warnings, nil
}

// Sum returns the sum of calibration values over every line of the document.
// Warnings report lines without digits and lines with non-ASCII bytes; those
// lines still take part in the sum.
//
// Example:
//
//	sum, warnings, err := trebuchet.Open("input.txt").Sum()
func (e *Extractor) Sum() (uint64, []Warning, error) {
	if e.err != nil {
		return 0, nil, e.err
	}

	doc, err := e.load()
	if err != nil {
		return 0, nil, err
	}

	c := e.calibrator()
	total, err := c.Sum(e.options.ctx, doc.text)
	if err != nil {
		return 0, nil, fmt.Errorf("summing calibration values: %w", err)
	}

	warnings := append(doc.warnings, lineWarnings(e.options.scanner(), calibration.SplitLines(doc.text))...)

	e.options.logger.Info("calibration sum computed",
		zap.String("source", e.source()),
		zap.Stringer("format", doc.format),
		zap.Uint64("sum", total),
		zap.Int("warnings", len(warnings)))

	return total, warnings, nil
}

// Lines returns the per-line breakdown of the document.
//
// Example:
//
//	lines, _, err := trebuchet.FromString("eightwo\n").Lines()
//	// lines[0].Value == 82
func (e *Extractor) Lines() ([]calibration.Line, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	doc, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	lines := e.calibrator().Explain(doc.text)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	warnings := append(doc.warnings, lineWarnings(e.options.scanner(), texts)...)
	return lines, warnings, nil
}

func (e *Extractor) calibrator() *calibration.Calibrator {
	return calibration.New(e.options.scanner(),
		calibration.WithWorkers(e.options.workers),
		calibration.WithLogger(e.options.logger),
		calibration.WithMetrics(e.options.metrics))
}

// source names the input for logs and errors.
func (e *Extractor) source() string {
	if e.hasData {
		return "<memory>"
	}
	return e.filename
}

// loadedDocument is a calibration document decoded to text.
type loadedDocument struct {
	text     string
	format   format.Format
	warnings []Warning
}
