package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	periodFlags
	output string
	format string
	short  bool
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains of a financial year, matching sells to buys first-in first-out" }
func (*gainsCmd) Usage() string {
	return `cgs gains [-fy <year>] [-fy-start <month>] [-s <date>] [-d <date>] [-o <file>] [-format csv|jsonl|md] [-short]

  Replays all trades of the data directory and reports the disposals of sells
  made during the period, with their cost of acquisition, consideration
  received and income.

  The report is saved to ` + capgains.DefaultReportFile + ` unless -o is set, "-o -" writes it
  to the standard output. Nothing is saved when the period has no disposal.
  With -format md the report is shown in the terminal.

Usage Examples:
# Saves the report of the 2023-24 financial year.
$ cgs gains -fy 2023

# Shows a calendar year summary.
$ cgs gains -fy-start january -fy 2024 -format md -short
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	c.periodFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Report file, '-' for the standard output. Defaults to "+capgains.DefaultReportFile+".")
	f.StringVar(&c.format, "format", "", "Report format: csv, jsonl or md. Defaults to the report file extension.")
	f.BoolVar(&c.short, "short", false, "With -format md, hide the list of disposals.")
}

// reportFormat returns the format to write the report file in.
func reportFormat(file string) string {
	if filepath.Ext(file) == ".jsonl" {
		return "jsonl"
	}
	return "csv"
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case "", "csv", "jsonl", "md":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown report format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	file := c.output
	if file == "" {
		file = capgains.DefaultReportFile
		if c.format == "jsonl" {
			file = strings.TrimSuffix(file, filepath.Ext(file)) + ".jsonl"
		}
	}
	if file != "-" && c.format != "" && c.format != "md" && c.format != reportFormat(file) {
		fmt.Fprintf(os.Stderr, "Error: -format %s does not match report file %q\n", c.format, file)
		return subcommands.ExitUsageError
	}

	period, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := capgains.ComputeGains(ledger, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating gains: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.format == "md":
		printMarkdown(renderer.GainsMarkdown(report, renderer.GainsOptions{SkipDisposals: c.short}))
	case file == "-":
		encode := capgains.EncodeGainsCSV
		if c.format == "jsonl" {
			encode = capgains.EncodeGainsJSONL
		}
		if err := encode(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
	case report.IsEmpty():
		fmt.Fprintf(os.Stderr, "No disposal between %s and %s, no report saved.\n", period.From, period.To)
	default:
		if err := capgains.SaveGains(file, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Saved %d disposals to %s, realized %s.\n", len(report.Disposals), file, report.Realized.SignedString())
	}
	return subcommands.ExitSuccess
}
