package capgains

import (
	"fmt"
	"iter"
	"time"

	"github.com/etnz/capgains/date"
)

// Journal is the outcome of replaying trades through a Matcher: every
// disposal in the order it was realized, and the lots still open afterwards.
//
// Disposals are recorded whatever their date, so that one journal can serve
// reports for any number of periods.
type Journal struct {
	disposals []Disposal
	matcher   *Matcher
}

// Replay walks the trades once, in order. Buys open lots, sells consume
// them, including sells outside any period of interest as they set the cost
// basis of later ones.
//
// Trades must be in chronological order. Replay stops at the first error.
func Replay(trades iter.Seq2[int, Trade]) (*Journal, error) {
	j := &Journal{matcher: NewMatcher()}
	var last time.Time
	for i, t := range trades {
		if t.Time.Before(last) {
			return nil, fmt.Errorf("trade #%d %v is out of chronological order", i, t)
		}
		last = t.Time
		disposals, err := j.matcher.Apply(t)
		if err != nil {
			return nil, fmt.Errorf("replay trade #%d: %w", i, err)
		}
		j.disposals = append(j.disposals, disposals...)
	}
	return j, nil
}

// ReplayLedger replays all trades of a ledger.
func ReplayLedger(l *Ledger) (*Journal, error) { return Replay(l.Trades()) }

// ComputeGains replays the ledger and returns the gains realized in period.
func ComputeGains(l *Ledger, period date.Range) (*GainsReport, error) {
	j, err := ReplayLedger(l)
	if err != nil {
		return nil, err
	}
	return j.Gains(period), nil
}

// Disposals iterates over all disposals in the order they were realized.
func (j *Journal) Disposals() iter.Seq[Disposal] {
	return func(yield func(Disposal) bool) {
		for _, d := range j.disposals {
			if !yield(d) {
				return
			}
		}
	}
}

// DisposalsIn iterates over the disposals whose disposal day is in period,
// in the order they were realized.
func (j *Journal) DisposalsIn(period date.Range) iter.Seq[Disposal] {
	return func(yield func(Disposal) bool) {
		for _, d := range j.disposals {
			if !period.ContainsTime(d.Disposed) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Matcher returns the lots left open at the end of the replay.
func (j *Journal) Matcher() *Matcher { return j.matcher }
