package trebuchet

import (
	"context"

	"go.uber.org/zap"

	"github.com/tsawler/trebuchet/calibration"
	"github.com/tsawler/trebuchet/numeral"
	"github.com/tsawler/trebuchet/ocr"
)

// ExtractOptions holds configuration for calibration extraction.
type ExtractOptions struct {
	// Recognition
	table *numeral.WordTable // nil means literal digits only

	// Processing
	workers int

	// HTML block selection: a non-negative htmlBlock picks a block by index,
	// otherwise htmlExample picks among the blocks inside <article> elements.
	htmlBlock   int
	htmlExample int

	// OCR
	ocrLanguage string
	minHeight   int

	// Ambient
	ctx     context.Context
	logger  *zap.Logger
	metrics *calibration.Metrics
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		table:       numeral.DefaultTable(),
		workers:     1,
		htmlBlock:   -1,
		htmlExample: 0,
		ocrLanguage: "eng",
		minHeight:   ocr.DefaultMinHeight,
		ctx:         context.Background(),
		logger:      zap.NewNop(),
	}
}

// clone creates a copy of ExtractOptions. Every field is either a value or
// shared read-only, so a shallow copy is enough.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}

// scanner returns the scanner these options describe.
func (o ExtractOptions) scanner() *numeral.Scanner {
	return numeral.NewScanner(o.table)
}
