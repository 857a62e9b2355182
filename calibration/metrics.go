package calibration

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tsawler/trebuchet/numeral"
)

const namespace = "trebuchet"

// Metrics holds the Prometheus collectors a Calibrator updates.
// A nil *Metrics records nothing.
type Metrics struct {
	lines   prometheus.Counter
	digits  *prometheus.CounterVec
	missing *prometheus.CounterVec
	sum     prometheus.Gauge
}

// NewMetrics creates the calibration collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_total",
			Help:      "Lines scanned for calibration values.",
		}),
		digits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digits_total",
			Help:      "Digits found, by scan direction and how they were recognized.",
		}, []string{"direction", "kind"}),
		missing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_digits_total",
			Help:      "Line ends with no digit, by scan direction.",
		}, []string{"direction"}),
		sum: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "calibration_sum",
			Help:      "Most recent document calibration sum.",
		}),
	}

	for _, c := range []prometheus.Collector{m.lines, m.digits, m.missing, m.sum} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering calibration metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(l Line) {
	if m == nil {
		return
	}
	m.lines.Inc()
	m.end(numeral.Forward, l.First, l.HasFirst)
	m.end(numeral.Backward, l.Last, l.HasLast)
}

func (m *Metrics) end(dir numeral.Direction, match numeral.Match, found bool) {
	if !found {
		m.missing.WithLabelValues(dir.String()).Inc()
		return
	}
	m.digits.WithLabelValues(dir.String(), match.Kind.String()).Inc()
}

func (m *Metrics) setSum(total uint64) {
	if m == nil {
		return
	}
	m.sum.Set(float64(total))
}
