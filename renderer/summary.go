package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// SummaryMarkdown renders the realized gains of each financial year.
func SummaryMarkdown(s *capgains.SummaryReport) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Realized Gains per Financial Year\n\n")
	if len(s.Years) == 0 {
		fmt.Fprint(&b, "No disposal.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| Year | From | To | Disposals | Cost | Proceeds | Realized |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")
	for _, y := range s.Years {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s |\n",
			y.Range.Label(), y.Range.From, y.Range.To, y.Disposals, y.CostBasis, y.Proceeds, y.Realized.SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | | | | | | **%s** |\n", s.Realized.SignedString())
	return b.String()
}
