package capgains

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
)

// Trade report file name patterns, as produced by ExtractWorkbook.
const (
	ExchangeTradesGlob = "Exchange_Trades_*.csv"
	P2PTradesGlob      = "P2P_Trades_*.csv"
	jsonTradesGlob     = "*.json"
)

// LoadOptions configures how trade files are discovered and decoded.
type LoadOptions struct {
	Currency string // currency of trade prices, DefaultCurrency if empty.

	// JSON enables loading "*.json" trade files with this mapping.
	JSON *JSONMapping
}

// FindTradeFiles returns the trade files of the data directory: exchange
// trades first, then P2P trades, then JSON trades when enabled. Each group is
// sorted by name.
func FindTradeFiles(dir string, withJSON bool) ([]string, error) {
	globs := []string{ExchangeTradesGlob, P2PTradesGlob}
	if withJSON {
		globs = append(globs, jsonTradesGlob)
	}
	var files []string
	for _, glob := range globs {
		matches, err := filepath.Glob(filepath.Join(dir, glob))
		if err != nil {
			return nil, fmt.Errorf("invalid trade file pattern %q: %w", glob, err)
		}
		slices.Sort(matches)
		files = append(files, matches...)
	}
	return files, nil
}

// LoadLedger decodes all trade files of the data directory into a single
// ledger sorted by trade time.
//
// A directory with no trade file gives an empty ledger.
func LoadLedger(dir string, opts LoadOptions) (*Ledger, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("cannot open data directory: %w", err)
	}
	files, err := FindTradeFiles(dir, opts.JSON != nil)
	if err != nil {
		return nil, err
	}
	ledger := &Ledger{}
	for _, file := range files {
		trades, err := loadTradeFile(file, opts)
		if err != nil {
			return nil, err
		}
		log.Printf("load-trade-file name=%q trades=%d", file, len(trades))
		if err := ledger.Append(trades...); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}

// loadTradeFile opens and decodes a single trade file.
func loadTradeFile(file string, opts LoadOptions) ([]Trade, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open trade file %q: %w", file, err)
	}
	defer f.Close()
	return decodeTradeFile(f, file, opts)
}

func decodeTradeFile(r io.Reader, file string, opts LoadOptions) ([]Trade, error) {
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	source := filepath.Base(file)
	if filepath.Ext(file) == ".json" && opts.JSON != nil {
		return DecodeTradesJSON(r, source, currency, *opts.JSON)
	}
	return DecodeTrades(r, source, currency)
}
