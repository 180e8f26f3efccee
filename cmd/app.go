// Package cmd implements the cgs command line application, computing
// realized capital gains from trade files.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/capgains"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir     = flag.String("data", "cleaned_data", "Directory holding the trade files.")
	currency    = flag.String("currency", capgains.DefaultCurrency, "Currency of trade prices.")
	jsonFiles   = flag.Bool("json", false, "Also read the *.json trade files of the data directory.")
	jsonMapping = flag.String("json-mapping", "", "File of JSONPath expressions locating trade fields in JSON files. Implies -json.")
	Verbose     = flag.Bool("v", false, "Log file operations to stderr.")
)

// Commands are the cgs subcommands.
var Commands = []subcommands.Command{
	&gainsCmd{},
	&holdingCmd{},
	&summaryCmd{},
	&extractCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// SetupLogging silences the log package unless -v is set.
// It must be called after the flags are parsed.
func SetupLogging() {
	log.SetFlags(0)
	if !*Verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
}

// loadOptions returns the options to decode trade files with, from the global flags.
func loadOptions() (capgains.LoadOptions, error) {
	opts := capgains.LoadOptions{Currency: *currency}
	switch {
	case *jsonMapping != "":
		f, err := os.Open(*jsonMapping)
		if err != nil {
			return opts, fmt.Errorf("could not open JSON mapping: %w", err)
		}
		defer f.Close()
		m, err := capgains.DecodeJSONMapping(f)
		if err != nil {
			return opts, fmt.Errorf("could not read JSON mapping %q: %w", *jsonMapping, err)
		}
		opts.JSON = &m
	case *jsonFiles:
		m := capgains.DefaultJSONMapping
		opts.JSON = &m
	}
	return opts, nil
}

// DecodeLedger loads every trade file of the data directory.
func DecodeLedger() (*capgains.Ledger, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}
	ledger, err := capgains.LoadLedger(*dataDir, opts)
	if err != nil {
		return nil, fmt.Errorf("could not load trades from %q: %w", *dataDir, err)
	}
	return ledger, nil
}
