package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/capgains"
)

// GainsOptions holds configuration for rendering a gains report.
type GainsOptions struct {
	SkipDisposals bool // Only render the per asset summary.
}

// GainsMarkdown renders the gains report as markdown.
func GainsMarkdown(report *capgains.GainsReport, opts GainsOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Report from %s to %s\n\n", report.Range.From, report.Range.To)
	fmt.Fprint(&b, "Method: fifo\n\n")

	if report.IsEmpty() {
		fmt.Fprint(&b, "No disposal in the period.\n")
		return b.String()
	}

	fmt.Fprint(&b, "## Gains per Asset\n\n")
	fmt.Fprintln(&b, "| Asset | Quantity | Cost | Proceeds | Realized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, a := range report.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			a.Asset,
			a.Quantity,
			a.CostBasis,
			a.Proceeds,
			a.Realized.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** | **%s** | **%s** |\n",
		"Total",
		report.CostBasis,
		report.Proceeds,
		report.Realized.SignedString(),
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if opts.SkipDisposals {
			return false
		}
		fmt.Fprint(w, "\n## Disposals\n\n")
		fmt.Fprintln(w, "| Acquired | Disposed | Asset | Quantity | Cost | Proceeds | Gain |")
		fmt.Fprintln(w, "|:---|:---|:---|---:|---:|---:|---:|")
		for _, d := range report.Disposals {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
				day(d.Acquired),
				day(d.Disposed),
				d.Asset,
				d.Quantity,
				d.CostBasis,
				d.Proceeds,
				d.Gain.SignedString(),
			)
		}
		return true
	})

	return b.String()
}
