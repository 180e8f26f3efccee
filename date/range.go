package date

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// ContainsTime reports whether the calendar day of t is in the range.
func (r Range) ContainsTime(t time.Time) bool { return r.Contains(Of(t)) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// FinancialYear returns the twelve months long range starting on the first
// day of 'start' in 'year'.
//
// FinancialYear(2024, time.April) is 2024-04-01..2025-03-31.
func FinancialYear(year int, start time.Month) Range {
	from := New(year, start, 1)
	return Range{From: from, To: from.AddMonths(12).Add(-1)}
}

// FinancialYearOf returns the financial year starting on 'start' month that contains d.
func FinancialYearOf(d Date, start time.Month) Range {
	year := d.Year()
	if d.Month() < start {
		year--
	}
	return FinancialYear(year, start)
}

// FinancialYears returns an iterator over consecutive financial years,
// starting with the one containing 'from' and ending with the one
// containing 'to'.
func FinancialYears(from, to Date, start time.Month) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if from.After(to) {
			return
		}
		for fy := FinancialYearOf(from, start); !fy.From.After(to); fy = FinancialYear(fy.From.Year()+1, start) {
			if !yield(fy) {
				return
			}
		}
	}
}

// Label names the financial year r in the "2024-25" form when it spans two
// calendar years, or "2024" when it is a calendar year.
func (r Range) Label() string {
	if r.From.Year() == r.To.Year() {
		return strconv.Itoa(r.From.Year())
	}
	return fmt.Sprintf("%d-%02d", r.From.Year(), r.To.Year()%100)
}

// ParseFinancialYear parses a financial year given either as its starting
// year "2024" or in the "2024-25" form.
func ParseFinancialYear(s string, start time.Month) (Range, error) {
	s = strings.TrimSpace(s)
	head, tail, found := strings.Cut(s, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return Range{}, fmt.Errorf("invalid financial year %q: %w", s, err)
	}
	fy := FinancialYear(year, start)
	if found {
		end, err := strconv.Atoi(tail)
		if err != nil {
			return Range{}, fmt.Errorf("invalid financial year %q: %w", s, err)
		}
		if end != fy.To.Year()%100 && end != fy.To.Year() {
			return Range{}, fmt.Errorf("invalid financial year %q: a year starting in %v %d ends in %d", s, start, year, fy.To.Year())
		}
	}
	return fy, nil
}

// ParseMonth parses a month name ("april", "Apr") or number ("4").
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month %q", s)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid month %q", s)
}
