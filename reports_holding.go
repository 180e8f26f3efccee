package capgains

import "time"

// HoldingReport lists the lots still open at the end of a replay.
type HoldingReport struct {
	Time      time.Time // time of the last trade replayed
	Positions []Position
}

// Position is the open quantity of an asset and the lots it is made of,
// oldest first.
type Position struct {
	Asset    string
	Quantity Quantity
	Cost     Money
	Lots     []Lot
}

// Holding returns the open lots per asset, in alphabetical order of assets.
func (j *Journal) Holding(on time.Time) *HoldingReport {
	report := &HoldingReport{Time: on}
	m := j.matcher
	for asset := range m.Assets() {
		p := Position{Asset: asset, Quantity: m.Position(asset)}
		for l := range m.Lots(asset) {
			p.Lots = append(p.Lots, l)
			p.Cost = p.Cost.Add(l.Cost())
		}
		report.Positions = append(report.Positions, p)
	}
	return report
}

// TotalCost returns the cost basis of all open lots.
func (r *HoldingReport) TotalCost() Money {
	var total Money
	for _, p := range r.Positions {
		total = total.Add(p.Cost)
	}
	return total
}
