// Package main implements the trebuchet CLI, which sums calibration values
// from text files, HTML puzzle pages, and scanned images.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds flag values shared by the commands.
type options struct {
	configPath string
	literal    bool
	workers    int
	explain    bool
	metrics    bool
	logLevel   string
	block      int
	example    int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "trebuchet [file]",
		Short: "Sum calibration values from a document",
		Long: `trebuchet reads a calibration document and prints the sum of its
calibration values. Each line's value is its first digit times ten plus its
last digit, where digits may be spelled out ("one" through "nine").

With no file, or with "-", the document is read from stdin.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/trebuchet/config.yaml)")
	flags.BoolVar(&opts.literal, "literal", false, "recognize literal digits only, not spelled words")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	addSumFlags(rootCmd, opts)

	rootCmd.AddCommand(newSumCmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))
	return rootCmd
}

func addSumFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "goroutines used to sum lines (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print the value of every line")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "write Prometheus metrics to stderr")
	cmd.Flags().IntVar(&opts.block, "block", -1, "HTML input: index of the <pre> block to read")
	cmd.Flags().IntVar(&opts.example, "example", 0, "HTML input: index of the example block inside <article>")
}
