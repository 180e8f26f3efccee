package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/capgains/date"
)

// defaultFinancialYear is the year the default reporting period starts in.
const defaultFinancialYear = 2024

// periodFlags selects a reporting period on the command line.
type periodFlags struct {
	fy      string
	fyStart string
	start   string
	end     string
}

func (p *periodFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.fy, "fy", strconv.Itoa(defaultFinancialYear), "Financial year to report on, e.g. 2024 or 2024-25.")
	f.StringVar(&p.fyStart, "fy-start", "april", "First month of financial years.")
	f.StringVar(&p.start, "s", "", "First day of the reporting period, defaults to the start of the financial year.")
	f.StringVar(&p.end, "d", "", "Last day of the reporting period, defaults to the end of the financial year.")
}

// startMonth returns the first month of financial years.
func (p *periodFlags) startMonth() (time.Month, error) {
	m, err := date.ParseMonth(p.fyStart)
	if err != nil {
		return 0, fmt.Errorf("invalid -fy-start: %w", err)
	}
	return m, nil
}

// Range returns the reporting period: the financial year, with its bounds
// replaced by -s and -d when set.
func (p *periodFlags) Range() (date.Range, error) {
	start, err := p.startMonth()
	if err != nil {
		return date.Range{}, err
	}
	period, err := date.ParseFinancialYear(p.fy, start)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -fy: %w", err)
	}
	if p.start != "" {
		if period.From, err = date.Parse(p.start); err != nil {
			return date.Range{}, fmt.Errorf("invalid -s: %w", err)
		}
	}
	if p.end != "" {
		if period.To, err = date.Parse(p.end); err != nil {
			return date.Range{}, fmt.Errorf("invalid -d: %w", err)
		}
	}
	if period.From.After(period.To) {
		return date.Range{}, fmt.Errorf("empty period: %s is after %s", period.From, period.To)
	}
	return period, nil
}
