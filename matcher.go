package capgains

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"
)

// Matcher keeps the open lots of every asset and matches sells against them
// first-in, first-out.
//
// A Matcher is not safe for concurrent use.
type Matcher struct {
	queues map[string]*lotQueue
}

// NewMatcher returns a Matcher with no open lot.
func NewMatcher() *Matcher {
	return &Matcher{queues: make(map[string]*lotQueue)}
}

func (m *Matcher) queue(asset string) *lotQueue {
	q, ok := m.queues[asset]
	if !ok {
		q = new(lotQueue)
		m.queues[asset] = q
	}
	return q
}

// Open appends a new lot for the asset.
//
// Lots must be opened in acquisition order. A non-positive quantity or a
// negative unit cost is rejected with a *MalformedTradeError and opens nothing.
func (m *Matcher) Open(asset string, on time.Time, quantity Quantity, unitCost Money) error {
	if err := NewBuy(on, asset, quantity, unitCost).Validate(); err != nil {
		return err
	}
	m.queue(asset).open(Lot{Asset: asset, AcquiredAt: on, UnitCost: unitCost, Remaining: quantity})
	return nil
}

// PeekOldest returns the oldest open lot of the asset, or ErrEmptyQueue.
func (m *Matcher) PeekOldest(asset string) (Lot, error) {
	q, ok := m.queues[asset]
	if !ok {
		return Lot{}, fmt.Errorf("%q: %w", asset, ErrEmptyQueue)
	}
	l, err := q.peekOldest()
	if err != nil {
		return Lot{}, fmt.Errorf("%q: %w", asset, err)
	}
	return *l, nil
}

// Consume disposes of quantity units of asset sold at price on 'on'.
// It returns the realized gain and one Disposal per lot, or part of lot,
// consumed.
//
// A non-positive quantity or a negative price is rejected with a
// *MalformedTradeError and consumes nothing.
func (m *Matcher) Consume(asset string, quantity Quantity, price Money, on time.Time) (Money, []Disposal, error) {
	if err := NewSell(on, asset, quantity, price).Validate(); err != nil {
		return Money{}, nil, err
	}
	return m.queue(asset).consume(asset, quantity, price, on)
}

// Apply processes a single trade: a Buy opens a lot, a Sell consumes lots.
// Invalid trades are rejected with a *MalformedTradeError.
func (m *Matcher) Apply(t Trade) ([]Disposal, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	switch t.Side {
	case Buy:
		return nil, m.Open(t.Asset, t.Time, t.Quantity, t.Price)
	case Sell:
		_, disposals, err := m.Consume(t.Asset, t.Quantity, t.Price, t.Time)
		return disposals, err
	default:
		return nil, fmt.Errorf("cannot apply trade %v: unknown side", t)
	}
}

// Position returns the total open quantity of the asset.
func (m *Matcher) Position(asset string) Quantity {
	if q, ok := m.queues[asset]; ok {
		return q.total
	}
	return Quantity{}
}

// Lots iterates over the open lots of the asset, oldest first.
func (m *Matcher) Lots(asset string) iter.Seq[Lot] {
	if q, ok := m.queues[asset]; ok {
		return q.all()
	}
	return func(func(Lot) bool) {}
}

// Assets iterates in alphabetical order over assets that have open lots.
func (m *Matcher) Assets() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, asset := range slices.Sorted(maps.Keys(m.queues)) {
			if m.queues[asset].Len() == 0 {
				continue
			}
			if !yield(asset) {
				return
			}
		}
	}
}
