package capgains

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// JSONMapping locates trade fields in a JSON document with JSONPath
// expressions.
//
// Trades selects the list of trades in the document. The other expressions
// are evaluated against each trade.
type JSONMapping struct {
	Trades string `json:"trades"`
	Date   string `json:"date"`
	Market string `json:"market"`
	Side   string `json:"side"`
	Price  string `json:"price"`
	Volume string `json:"volume"`

	// Sides maps side values of the document to "Buy" or "Sell".
	// Values are used as is when empty.
	Sides map[string]string `json:"sides,omitempty"`
}

// DefaultJSONMapping reads a JSON array of objects whose properties are named
// after the CSV trade report columns.
var DefaultJSONMapping = JSONMapping{
	Trades: "$",
	Date:   "$.Date",
	Market: "$.Market",
	Side:   `$["Trade Type"]`,
	Price:  "$.Price",
	Volume: "$.Volume",
}

// DecodeJSONMapping reads a JSONMapping. Missing expressions default to
// DefaultJSONMapping's.
func DecodeJSONMapping(r io.Reader) (JSONMapping, error) {
	m := DefaultJSONMapping
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return JSONMapping{}, fmt.Errorf("invalid JSON mapping: %w", err)
	}
	return m, nil
}

// DecodeTradesJSON reads trades from a JSON document using mapping.
//
// Numbers are kept exact. A numeric date is a Unix time in milliseconds.
// Trades are returned in document order, Row being the 1-based index of the
// trade in the selected list.
func DecodeTradesJSON(r io.Reader, source, currency string, mapping JSONMapping) ([]Trade, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot parse %q: %w", source, err)
	}

	selected, err := jsonpath.Get(mapping.Trades, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select trades in %q with %q: %w", source, mapping.Trades, err)
	}
	list, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot select trades in %q with %q: not a list", source, mapping.Trades)
	}

	var trades []Trade
	for i, jtrade := range list {
		row := i + 1
		var epoch bool // the date is a number
		get := func(field, path string) (string, error) {
			v, err := jsonpath.Get(path, jtrade)
			if err != nil {
				return "", &MalformedTradeError{Source: source, Row: row, Field: field, Reason: "missing field " + path, Err: err}
			}
			// jsonpath may wrap a single answer in a list.
			if l, ok := v.([]any); ok && len(l) == 1 {
				v = l[0]
			}
			if _, ok := v.(json.Number); ok && field == colDate {
				epoch = true
			}
			s, err := jsonString(v)
			if err != nil {
				return "", &MalformedTradeError{Source: source, Row: row, Field: field, Reason: err.Error()}
			}
			return s, nil
		}

		var raw rawTrade
		for _, f := range []struct {
			name, path string
			dst        *string
		}{
			{colDate, mapping.Date, &raw.date},
			{colMarket, mapping.Market, &raw.market},
			{colSide, mapping.Side, &raw.side},
			{colPrice, mapping.Price, &raw.price},
			{colVolume, mapping.Volume, &raw.volume},
		} {
			if *f.dst, err = get(f.name, f.path); err != nil {
				return nil, err
			}
		}
		if side, ok := mapping.Sides[raw.side]; ok {
			raw.side = side
		}
		if epoch {
			ms, err := strconv.ParseInt(raw.date, 10, 64)
			if err != nil {
				return nil, &MalformedTradeError{Source: source, Row: row, Field: colDate, Value: raw.date, Reason: "not a Unix time in milliseconds"}
			}
			raw.date = time.UnixMilli(ms).UTC().Format(time.RFC3339)
		}

		t, err := raw.parse(source, row, currency)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// jsonString returns the textual value of a JSON scalar.
func jsonString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unexpected value of type %T", v)
	}
}
