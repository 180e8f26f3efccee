package capgains

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyQueue is returned when looking at the oldest lot of an asset that
// has no open lot.
var ErrEmptyQueue = errors.New("no open lot")

// InsufficientLotsError is returned when a sell disposes of more units than
// the open lots of the asset hold.
type InsufficientLotsError struct {
	Asset     string
	Shortfall Quantity // units sold in excess of the open lots
	Time      time.Time
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("%s: insufficient lots for %q: sell exceeds open quantity by %s", e.Time.Format(timestampFormat), e.Asset, e.Shortfall)
}

// MalformedTradeError is returned when a trade row cannot be turned into a
// valid Trade.
type MalformedTradeError struct {
	Source string // file name, or "" when unknown
	Row    int    // 1-based line or record number in Source; 0 when unknown
	Field  string
	Value  string
	Reason string
	Err    error // underlying parse error, if any
}

func (e *MalformedTradeError) Error() string {
	location := e.Source
	if location == "" {
		location = "<input>"
	}
	if e.Row > 0 {
		location = fmt.Sprintf("%s:%d", location, e.Row)
	}
	msg := fmt.Sprintf("%s: malformed trade: %s", location, e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedTradeError) Unwrap() error { return e.Err }
