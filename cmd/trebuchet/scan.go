package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/trebuchet/numeral"
)

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <line>...",
		Short: "Show the digits found in each line",
		Long: `Show the first digit, the last digit, and every digit occurrence
found in each line. Overlapping words are listed separately.

Examples:
  trebuchet scan eightwo twone
  trebuchet scan --literal 1abc2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := numeral.DefaultTable()
			if opts.literal {
				table = nil
			}
			s := numeral.NewScanner(table)

			out := cmd.OutOrStdout()
			for _, line := range args {
				b := []byte(line)
				first, hasFirst := s.Scan(b, numeral.Forward)
				last, hasLast := s.Scan(b, numeral.Backward)

				all := s.All(b)
				parts := make([]string, len(all))
				for i, m := range all {
					parts[i] = fmt.Sprintf("%d@%d", m.Value, m.Start)
				}

				fmt.Fprintf(out, "%s: first=%s last=%s value=%d all=[%s]\n",
					line,
					describe(first, hasFirst),
					describe(last, hasLast),
					10*first.Value+last.Value,
					strings.Join(parts, " "))
			}
			return nil
		},
	}
}
