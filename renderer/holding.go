package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// HoldingMarkdown renders the open lots as markdown, one table per asset.
func HoldingMarkdown(h *capgains.HoldingReport) string {
	var b strings.Builder
	if h.Time.IsZero() {
		fmt.Fprint(&b, "# Holding\n\n")
	} else {
		fmt.Fprintf(&b, "# Holding on %s\n\n", day(h.Time))
	}

	if len(h.Positions) == 0 {
		fmt.Fprint(&b, "No open lot.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Quantity | Cost |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, p := range h.Positions {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Asset, p.Quantity, p.Cost)
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** |\n", h.TotalCost())

	for _, p := range h.Positions {
		fmt.Fprintf(&b, "\n## %s\n\n", p.Asset)
		fmt.Fprintln(&b, "| Acquired | Remaining | Unit Cost | Cost |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for _, l := range p.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", day(l.AcquiredAt), l.Remaining, l.UnitCost, l.Cost())
		}
	}
	return b.String()
}
