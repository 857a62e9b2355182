// Package calibration sums two-digit calibration values over a document.
//
// Each line contributes 10*first + last, where first is the first digit found
// scanning forward and last the last digit found scanning backward. A missing
// digit on either end counts as 0; it is never an error.
//
//	c := calibration.New(numeral.NewScanner(numeral.DefaultTable()))
//	total := c.Compute("two1nine\neightwothree\n") // 29 + 83
//
// # Parallel Sums
//
// Lines are independent, so [Calibrator.Sum] can spread them over workers
// configured with [WithWorkers]. The result is identical to [Calibrator.Compute].
//
// # Metrics
//
// [NewMetrics] registers Prometheus counters for lines, digits by direction
// and kind, and missing digits. Pass them with [WithMetrics].
package calibration
