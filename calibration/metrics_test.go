package calibration

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/trebuchet/numeral"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	c := New(numeral.NewScanner(numeral.DefaultTable()), WithMetrics(m))
	total := c.Compute("two1nine\n7pqrstsixteen\nnothing\n")
	if total != 29+76 {
		t.Fatalf("Compute = %d", total)
	}

	if got := testutil.ToFloat64(m.lines); got != 3 {
		t.Errorf("lines_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.digits.WithLabelValues("Forward", "Word")); got != 1 {
		t.Errorf("Forward/Word = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.digits.WithLabelValues("Forward", "Literal")); got != 1 {
		t.Errorf("Forward/Literal = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.digits.WithLabelValues("Backward", "Word")); got != 2 {
		t.Errorf("Backward/Word = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.missing.WithLabelValues("Backward")); got != 1 {
		t.Errorf("missing Backward = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.sum); got != 105 {
		t.Errorf("calibration_sum = %v, want 105", got)
	}

	expected := `
# HELP trebuchet_lines_total Lines scanned for calibration values.
# TYPE trebuchet_lines_total counter
trebuchet_lines_total 3
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "trebuchet_lines_total"); err != nil {
		t.Error(err)
	}
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatalf("first NewMetrics: %v", err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Error("expected error registering metrics twice")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.observe(Line{})
	m.setSum(5)
}

func TestLogsMissingDigits(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(numeral.NewLiteralScanner(), WithLogger(zap.New(core)))

	c.Compute("abc\n12\n")

	entries := logs.FilterMessage("no digit on line").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if line := entries[0].ContextMap()["line"]; line != int64(1) {
		t.Errorf("logged line = %v, want 1", line)
	}
}
