package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/trebuchet"
	"github.com/tsawler/trebuchet/calibration"
	"github.com/tsawler/trebuchet/internal/config"
	"github.com/tsawler/trebuchet/internal/logging"
	"github.com/tsawler/trebuchet/numeral"
)

func newSumCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [file|-]",
		Short: "Print the calibration sum of a document",
		Long: `Print the calibration sum of a document.

Examples:
  # Sum a puzzle input
  trebuchet sum input.txt

  # Part one rules: literal digits only
  trebuchet sum --literal input.txt

  # Sum the second example on a saved puzzle page
  trebuchet sum --example 1 day01.html

  # Show every line's value
  cat input.txt | trebuchet sum --explain -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, opts, args)
		},
	}
	addSumFlags(cmd, opts)
	return cmd
}

// loadConfig loads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("literal") {
		cfg.Mode = config.ModeWords
		if opts.literal {
			cfg.Mode = config.ModeLiteral
		}
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("metrics") {
		cfg.Metrics = opts.metrics
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("block") {
		cfg.HTML.Block = opts.block
	}
	if flags.Changed("example") {
		cfg.HTML.Example = opts.example
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSum(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ext, err := openInput(cmd, args)
	if err != nil {
		return err
	}

	if cfg.Mode == config.ModeLiteral {
		ext = ext.LiteralOnly()
	}
	ext = ext.Workers(cfg.Workers).
		HTMLExample(cfg.HTML.Example).
		OCRLanguage(cfg.OCR.Language).
		MinImageHeight(cfg.OCR.MinHeight).
		Logger(logger).
		Context(cmd.Context())
	if cfg.HTML.Block >= 0 {
		ext = ext.HTMLBlock(cfg.HTML.Block)
	}

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		m, err := calibration.NewMetrics(reg)
		if err != nil {
			return err
		}
		ext = ext.Metrics(m)
	}

	out := cmd.OutOrStdout()
	var warnings []trebuchet.Warning
	if opts.explain {
		var lines []calibration.Line
		lines, warnings, err = ext.Lines()
		if err != nil {
			return err
		}
		if err := writeExplain(out, lines); err != nil {
			return err
		}
	} else {
		var sum uint64
		sum, warnings, err = ext.Sum()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sum)
	}

	for _, w := range warnings {
		logger.Warn(w.Message, zap.Int("line", w.Line))
	}

	if reg != nil {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

// openInput returns an Extractor over the named file, or over stdin for "-"
// or no argument.
func openInput(cmd *cobra.Command, args []string) (*trebuchet.Extractor, error) {
	if len(args) == 1 && args[0] != "-" {
		return trebuchet.Open(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return trebuchet.FromBytes(data), nil
}

func writeExplain(w io.Writer, lines []calibration.Line) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tFIRST\tLAST\tVALUE\tTEXT")

	var total uint64
	for _, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			l.Number, describe(l.First, l.HasFirst), describe(l.Last, l.HasLast), l.Value, l.Text)
		total += uint64(l.Value)
	}
	fmt.Fprintf(tw, "\t\t\t%d\tTOTAL\n", total)
	return tw.Flush()
}

// describe renders a match as "8 word@0", or "-" when absent.
func describe(m numeral.Match, found bool) string {
	if !found {
		return "-"
	}
	kind := "lit"
	if m.Kind == numeral.Word {
		kind = "word"
	}
	return fmt.Sprintf("%d %s@%d", m.Value, kind, m.Start)
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
