package calibration

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/trebuchet/numeral"
)

// minChunk is the smallest number of lines handed to one worker.
const minChunk = 256

// Line is the breakdown of one line's calibration value.
type Line struct {
	Number   int // 1-indexed
	Text     string
	First    numeral.Match
	Last     numeral.Match
	HasFirst bool
	HasLast  bool
	Value    int
}

// Option configures a Calibrator.
type Option func(*Calibrator)

// WithWorkers sets how many goroutines Sum uses. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(c *Calibrator) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calibrator) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithMetrics records scan results in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Calibrator) {
		c.metrics = m
	}
}

// Calibrator computes calibration sums with a fixed scanner.
// It is safe for concurrent use.
type Calibrator struct {
	scanner *numeral.Scanner
	workers int
	logger  *zap.Logger
	metrics *Metrics
}

// New returns a Calibrator using scanner for every line.
func New(scanner *numeral.Scanner, opts ...Option) *Calibrator {
	c := &Calibrator{
		scanner: scanner,
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the calibration value of a single line.
func Value(s *numeral.Scanner, line []byte) int {
	first, _ := s.Digit(line, numeral.Forward)
	last, _ := s.Digit(line, numeral.Backward)
	return 10*first + last
}

// SplitLines splits a document into lines. A trailing "\r" is dropped from
// each line and a final newline does not produce an extra empty line.
func SplitLines(document string) []string {
	if document == "" {
		return nil
	}
	lines := strings.Split(document, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Compute returns the sum of calibration values over every line of document.
// An empty document sums to 0.
func (c *Calibrator) Compute(document string) uint64 {
	total := c.sumLines(SplitLines(document), 0)
	c.metrics.setSum(total)
	return total
}

// Sum is Compute spread over the configured number of workers. It returns
// early with ctx's error if ctx is cancelled.
func (c *Calibrator) Sum(ctx context.Context, document string) (uint64, error) {
	lines := SplitLines(document)
	if c.workers <= 1 || len(lines) <= minChunk {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		total := c.sumLines(lines, 0)
		c.metrics.setSum(total)
		return total, nil
	}

	chunk := (len(lines) + c.workers - 1) / c.workers
	if chunk < minChunk {
		chunk = minChunk
	}

	partials := make([]uint64, (len(lines)+chunk-1)/chunk)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := range partials {
		start := i * chunk
		end := start + chunk
		if end > len(lines) {
			end = len(lines)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = c.sumLines(lines[start:end], start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, p := range partials {
		total += p
	}
	c.logger.Debug("parallel sum finished",
		zap.Int("lines", len(lines)),
		zap.Int("chunks", len(partials)),
		zap.Uint64("sum", total))
	c.metrics.setSum(total)
	return total, nil
}

// Explain returns the per-line breakdown of document.
func (c *Calibrator) Explain(document string) []Line {
	lines := SplitLines(document)
	out := make([]Line, 0, len(lines))
	for i, text := range lines {
		out = append(out, c.line(i, text))
	}
	return out
}

func (c *Calibrator) sumLines(lines []string, offset int) uint64 {
	var total uint64
	for i, text := range lines {
		total += uint64(c.line(offset+i, text).Value)
	}
	return total
}

// line scans one line once in each direction.
func (c *Calibrator) line(index int, text string) Line {
	b := []byte(text)
	first, hasFirst := c.scanner.Scan(b, numeral.Forward)
	last, hasLast := c.scanner.Scan(b, numeral.Backward)

	l := Line{
		Number:   index + 1,
		Text:     text,
		First:    first,
		Last:     last,
		HasFirst: hasFirst,
		HasLast:  hasLast,
		Value:    10*first.Value + last.Value,
	}

	if !hasFirst {
		c.logger.Debug("no digit on line", zap.Int("line", l.Number))
	}
	c.metrics.observe(l)
	return l
}
