package capgains

import (
	"fmt"
	"time"
)

// Side tells whether a trade acquires or disposes of an asset.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide parses the trade type column of a trade report.
// Only the exact "Buy" and "Sell" literals are recognized.
func ParseSide(s string) (Side, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade type %q, want %q or %q", s, "Buy", "Sell")
	}
}

// Trade is a single buy or sell of an asset.
type Trade struct {
	Asset    string
	Side     Side
	Time     time.Time
	Price    Money    // per unit
	Quantity Quantity // always positive

	// Source and Row locate the trade in its input, for error messages.
	Source string
	Row    int
}

// NewBuy creates a Buy trade.
func NewBuy(on time.Time, asset string, quantity Quantity, price Money) Trade {
	return Trade{Asset: asset, Side: Buy, Time: on, Price: price, Quantity: quantity}
}

// NewSell creates a Sell trade.
func NewSell(on time.Time, asset string, quantity Quantity, price Money) Trade {
	return Trade{Asset: asset, Side: Sell, Time: on, Price: price, Quantity: quantity}
}

// Validate checks the trade fields and returns a *MalformedTradeError
// describing the first invalid one.
func (t Trade) Validate() error {
	switch {
	case t.Asset == "":
		return t.malformed("Market", "", "empty asset identifier")
	case t.Side != Buy && t.Side != Sell:
		return t.malformed("Trade Type", t.Side.String(), "unknown trade type")
	case t.Time.IsZero():
		return t.malformed("Date", "", "missing timestamp")
	case t.Price.IsNegative():
		return t.malformed("Price", t.Price.Exact(), "negative price")
	case !t.Quantity.IsPositive():
		return t.malformed("Volume", t.Quantity.String(), "quantity must be positive")
	}
	return nil
}

func (t Trade) malformed(field, value, reason string) *MalformedTradeError {
	return &MalformedTradeError{Source: t.Source, Row: t.Row, Field: field, Value: value, Reason: reason}
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.Time.Format(timestampFormat), t.Side, t.Quantity, t.Asset, t.Price.Exact())
}
