package capgains

import (
	"time"

	"github.com/etnz/capgains/date"
)

// SummaryReport holds the realized gains of each financial year that has
// at least one disposal.
type SummaryReport struct {
	Years    []YearGains
	Realized Money
}

// YearGains sums up the disposals of one financial year.
type YearGains struct {
	Range     date.Range
	Disposals int
	CostBasis Money
	Proceeds  Money
	Realized  Money
}

// Summary splits the journal's disposals into financial years starting in
// month 'start'. Each year is filtered from the same replay.
func (j *Journal) Summary(start time.Month) *SummaryReport {
	report := &SummaryReport{}
	if len(j.disposals) == 0 {
		return report
	}
	first := date.Of(j.disposals[0].Disposed)
	last := date.Of(j.disposals[len(j.disposals)-1].Disposed)
	for fy := range date.FinancialYears(first, last, start) {
		g := j.Gains(fy)
		if g.IsEmpty() {
			continue
		}
		report.Years = append(report.Years, YearGains{
			Range:     fy,
			Disposals: len(g.Disposals),
			CostBasis: g.CostBasis,
			Proceeds:  g.Proceeds,
			Realized:  g.Realized,
		})
		report.Realized = report.Realized.Add(g.Realized)
	}
	return report
}
