package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/google/subcommands"
)

// extractCmd holds the flags for the 'extract' subcommand.
type extractCmd struct {
	in  string
	out string
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "convert xlsx trade reports to trade files" }
func (*extractCmd) Usage() string {
	return `cgs extract [-in <dir>] [-out <dir>] [<workbook.xlsx>...]

  Writes the "Exchange Trades" and "P2P Trades" sheets of trade report
  workbooks to CSV trade files. Without arguments, every *.xlsx file of the
  -in directory is extracted.

Usage Examples:
$ cgs extract -in data -out cleaned_data
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "data", "Directory holding the xlsx trade reports.")
	f.StringVar(&c.out, "out", "", "Directory to write trade files to. Defaults to the -data directory.")
}

func (c *extractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == "" {
		out = *dataDir
	}

	var written []string
	var err error
	if f.NArg() == 0 {
		written, err = capgains.ExtractWorkbooks(c.in, out)
	} else {
		for _, wb := range f.Args() {
			var files []string
			files, err = capgains.ExtractWorkbook(wb, out)
			written = append(written, files...)
			if err != nil {
				break
			}
		}
	}
	for _, file := range written {
		fmt.Println(file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(written) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no trade sheet found.\n")
	}
	return subcommands.ExitSuccess
}
