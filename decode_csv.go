package capgains

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// timestampFormat is the format trade reports use for trade times.
const timestampFormat = "2006-01-02 15:04:05"

// timestampFormats are the formats accepted when reading trade times.
var timestampFormats = []string{
	timestampFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Column names of a trade report.
const (
	colDate   = "Date"
	colMarket = "Market"
	colSide   = "Trade Type"
	colPrice  = "Price"
	colVolume = "Volume"
)

// ParseTimestamp parses a trade time in any of the accepted formats. Times
// without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q want format %q", s, timestampFormat)
}

// rawTrade is a trade as read from a report, before any parsing.
type rawTrade struct {
	date, market, side, price, volume string
}

// parse converts the raw fields into a valid Trade.
func (r rawTrade) parse(source string, row int, currency string) (Trade, error) {
	malformed := func(field, value, reason string, err error) error {
		return &MalformedTradeError{Source: source, Row: row, Field: field, Value: value, Reason: reason, Err: err}
	}

	on, err := ParseTimestamp(r.date)
	if err != nil {
		return Trade{}, malformed(colDate, r.date, "unparseable timestamp", nil)
	}
	side, err := ParseSide(r.side)
	if err != nil {
		return Trade{}, malformed(colSide, r.side, "unknown trade type", nil)
	}
	price, err := ParseMoney(r.price, currency)
	if err != nil {
		return Trade{}, malformed(colPrice, r.price, "not a number", err)
	}
	quantity, err := ParseQuantity(r.volume)
	if err != nil {
		return Trade{}, malformed(colVolume, r.volume, "not a number", err)
	}
	t := Trade{
		Asset:    strings.TrimSpace(r.market),
		Side:     side,
		Time:     on,
		Price:    price,
		Quantity: quantity,
		Source:   source,
		Row:      row,
	}
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}
	return t, nil
}

// DecodeTrades reads trades from a CSV trade report.
//
// The first record is a header, columns are found by name: "Date",
// "Market", "Trade Type", "Price" and "Volume"; other columns are ignored.
// Prices are read in 'currency'. Trades are returned in file order.
//
// source names the input in error messages.
func DecodeTrades(r io.Reader, source, currency string) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %q: %w", source, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		// spreadsheets exports sometimes carry a BOM.
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range []string{colDate, colMarket, colSide, colPrice, colVolume} {
		if _, ok := columns[name]; !ok {
			return nil, &MalformedTradeError{Source: source, Row: 1, Field: name, Reason: "missing column"}
		}
	}

	var trades []Trade
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read %q: %w", source, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		field := func(name string) string {
			if i := columns[name]; i < len(record) {
				return record[i]
			}
			return ""
		}
		raw := rawTrade{
			date:   field(colDate),
			market: field(colMarket),
			side:   field(colSide),
			price:  field(colPrice),
			volume: field(colVolume),
		}
		t, err := raw.parse(source, line, currency)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
