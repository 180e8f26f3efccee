package capgains

import (
	"slices"
	"strings"

	"github.com/etnz/capgains/date"
)

// GainsReport contains the gains realized over a reporting period.
type GainsReport struct {
	Range     date.Range
	Disposals []Disposal // in the order they were realized
	Assets    []AssetGains
	CostBasis Money
	Proceeds  Money
	Realized  Money
}

// AssetGains sums up the disposals of a single asset.
type AssetGains struct {
	Asset     string
	Quantity  Quantity
	CostBasis Money
	Proceeds  Money
	Realized  Money
}

// Gains returns the report of disposals realized during period.
func (j *Journal) Gains(period date.Range) *GainsReport {
	report := &GainsReport{Range: period, Disposals: []Disposal{}}
	index := make(map[string]int)
	for d := range j.DisposalsIn(period) {
		report.Disposals = append(report.Disposals, d)
		report.CostBasis = report.CostBasis.Add(d.CostBasis)
		report.Proceeds = report.Proceeds.Add(d.Proceeds)
		report.Realized = report.Realized.Add(d.Gain)

		i, ok := index[d.Asset]
		if !ok {
			i = len(report.Assets)
			index[d.Asset] = i
			report.Assets = append(report.Assets, AssetGains{Asset: d.Asset})
		}
		a := &report.Assets[i]
		a.Quantity = a.Quantity.Add(d.Quantity)
		a.CostBasis = a.CostBasis.Add(d.CostBasis)
		a.Proceeds = a.Proceeds.Add(d.Proceeds)
		a.Realized = a.Realized.Add(d.Gain)
	}
	slices.SortFunc(report.Assets, func(a, b AssetGains) int { return strings.Compare(a.Asset, b.Asset) })
	return report
}

// IsEmpty reports whether no disposal was realized in the period.
func (r *GainsReport) IsEmpty() bool { return len(r.Disposals) == 0 }

// Currency returns the currency of the reported amounts, or "" for an empty report.
func (r *GainsReport) Currency() string { return r.Realized.Currency() }
