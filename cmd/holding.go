package cmd

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"
	"time"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the lots still open" }
func (*holdingCmd) Usage() string {
	return `cgs holding [-d <date>]

  Displays the open lots of each asset, oldest first, after all trades or
  after the trades made until the given day included.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Last day of trades to replay. Defaults to all trades.")
}

// tradesUntil yields the trades of the ledger made on day 'on' or before.
func tradesUntil(l *capgains.Ledger, on date.Date) iter.Seq2[int, capgains.Trade] {
	return func(yield func(int, capgains.Trade) bool) {
		for i, t := range l.Trades() {
			if date.Of(t.Time).After(on) {
				return
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// lastTradeTime returns the time of the last trade, or the zero time if there
// is none.
func lastTradeTime(trades iter.Seq2[int, capgains.Trade]) time.Time {
	var last time.Time
	for _, t := range trades {
		last = t.Time
	}
	return last
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on date.Date
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	trades := ledger.Trades()
	if !on.IsZero() {
		trades = tradesUntil(ledger, on)
	}
	journal, err := capgains.Replay(trades)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying trades: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingMarkdown(journal.Holding(lastTradeTime(trades))))
	return subcommands.ExitSuccess
}
