package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	fyStart string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "realized gains of every financial year" }
func (*summaryCmd) Usage() string {
	return `cgs summary [-fy-start <month>]

  Displays the realized gains of each financial year with disposals.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fyStart, "fy-start", "april", "First month of financial years.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := (&periodFlags{fyStart: c.fyStart}).startMonth()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	journal, err := capgains.ReplayLedger(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying trades: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(journal.Summary(start)))
	return subcommands.ExitSuccess
}
