package capgains

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"time"
)

// Ledger represents a list of trades.
//
// In a Ledger trades are always in chronological order.
type Ledger struct {
	trades []Trade
}

// NewLedger creates a ledger from trades, validating each of them.
func NewLedger(trades ...Trade) (*Ledger, error) {
	l := &Ledger{}
	if err := l.Append(trades...); err != nil {
		return nil, err
	}
	return l, nil
}

// Append validates and adds trades to the ledger, keeping it sorted.
// Nothing is appended if any trade is invalid.
func (l *Ledger) Append(trades ...Trade) error {
	for _, t := range trades {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	l.trades = append(l.trades, trades...)
	l.stableSort()
	return nil
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Trades returns an iterator that yields each trade in chronological order.
func (l *Ledger) Trades() iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Assets returns the sorted list of assets traded in the ledger.
func (l *Ledger) Assets() []string {
	var assets []string
	for _, t := range l.trades {
		assets = append(assets, t.Asset)
	}
	slices.Sort(assets)
	return slices.Compact(assets)
}

// stableSort sorts the ledger by trade time. The sort is stable, meaning
// trades at the same time maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Time.Before(l.trades[j].Time)
	})
}

// Oldest returns the time of the earliest trade, or the zero time if the ledger is empty.
func (l *Ledger) Oldest() time.Time {
	if len(l.trades) == 0 {
		return time.Time{}
	}
	return l.trades[0].Time
}

// Newest returns the time of the latest trade, or the zero time if the ledger is empty.
func (l *Ledger) Newest() time.Time {
	if len(l.trades) == 0 {
		return time.Time{}
	}
	return l.trades[len(l.trades)-1].Time
}

func (l *Ledger) String() string {
	return fmt.Sprintf("ledger of %d trades", len(l.trades))
}
