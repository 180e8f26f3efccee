package capgains

import (
	"iter"
	"time"
)

// Lot is an acquisition of an asset not yet entirely disposed of.
type Lot struct {
	Asset      string
	AcquiredAt time.Time
	UnitCost   Money
	Remaining  Quantity
}

// Cost returns the cost basis of the remaining units.
func (l Lot) Cost() Money { return l.UnitCost.Mul(l.Remaining) }

// Disposal is the realized gain of selling all or part of a lot.
type Disposal struct {
	Asset     string
	Acquired  time.Time
	Disposed  time.Time
	Quantity  Quantity
	CostBasis Money // Quantity * unit cost
	Proceeds  Money // Quantity * sell price
	Gain      Money // Proceeds - CostBasis
}

// compactThreshold is the number of popped slots a queue tolerates before
// reclaiming them.
const compactThreshold = 64

// lotQueue holds the open lots of a single asset in acquisition order.
//
// Lots are appended at the tail and popped from the head, both in constant
// time. Popped slots are reclaimed once they outnumber the live lots.
type lotQueue struct {
	lots  []Lot
	head  int      // index of the oldest open lot
	total Quantity // sum of Remaining over open lots
}

// Len returns the number of open lots.
func (q *lotQueue) Len() int { return len(q.lots) - q.head }

// open appends a lot to the tail of the queue.
func (q *lotQueue) open(l Lot) {
	q.lots = append(q.lots, l)
	q.total = q.total.Add(l.Remaining)
}

// peekOldest returns the head lot.
func (q *lotQueue) peekOldest() (*Lot, error) {
	if q.Len() == 0 {
		return nil, ErrEmptyQueue
	}
	return &q.lots[q.head], nil
}

// popOldest drops the head lot.
func (q *lotQueue) popOldest() {
	q.lots[q.head] = Lot{}
	q.head++
	switch {
	case q.head == len(q.lots):
		q.lots, q.head = q.lots[:0], 0
	case q.head >= compactThreshold && q.head*2 >= len(q.lots):
		n := copy(q.lots, q.lots[q.head:])
		clear(q.lots[n:])
		q.lots, q.head = q.lots[:n], 0
	}
}

// consume disposes of quantity units sold at price on 'on', oldest lots
// first. The last lot touched is split when the sell does not exhaust it.
//
// When the open lots hold less than quantity, consume returns an
// *InsufficientLotsError and leaves the queue untouched.
func (q *lotQueue) consume(asset string, quantity Quantity, price Money, on time.Time) (Money, []Disposal, error) {
	if q.total.LessThan(quantity) {
		return Money{}, nil, &InsufficientLotsError{Asset: asset, Shortfall: quantity.Sub(q.total), Time: on}
	}

	gain := M(0, price.Currency())
	var disposals []Disposal
	remaining := quantity
	for remaining.IsPositive() {
		l, err := q.peekOldest()
		if err != nil {
			// unreachable while total is in sync with the lots.
			return Money{}, nil, &InsufficientLotsError{Asset: asset, Shortfall: remaining, Time: on}
		}
		take := MinQuantity(l.Remaining, remaining)
		d := Disposal{
			Asset:     asset,
			Acquired:  l.AcquiredAt,
			Disposed:  on,
			Quantity:  take,
			CostBasis: l.UnitCost.Mul(take),
			Proceeds:  price.Mul(take),
		}
		d.Gain = d.Proceeds.Sub(d.CostBasis)
		disposals = append(disposals, d)
		gain = gain.Add(d.Gain)

		l.Remaining = l.Remaining.Sub(take)
		remaining = remaining.Sub(take)
		q.total = q.total.Sub(take)
		if l.Remaining.IsZero() {
			q.popOldest()
		}
	}
	return gain, disposals, nil
}

// all iterates over the open lots, oldest first.
func (q *lotQueue) all() iter.Seq[Lot] {
	return func(yield func(Lot) bool) {
		for _, l := range q.lots[q.head:] {
			if !yield(l) {
				return
			}
		}
	}
}
