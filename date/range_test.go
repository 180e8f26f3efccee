package date

import (
	"slices"
	"testing"
	"time"
)

func TestFinancialYear(t *testing.T) {
	testCases := []struct {
		name  string
		year  int
		start time.Month
		want  Range
		label string
	}{
		{"india", 2024, time.April, Range{New(2024, time.April, 1), New(2025, time.March, 31)}, "2024-25"},
		{"calendar", 2024, time.January, Range{New(2024, time.January, 1), New(2024, time.December, 31)}, "2024"},
		{"australia", 2023, time.July, Range{New(2023, time.July, 1), New(2024, time.June, 30)}, "2023-24"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FinancialYear(tc.year, tc.start)
			if got != tc.want {
				t.Errorf("FinancialYear() = %v, want %v", got, tc.want)
			}
			if got.Label() != tc.label {
				t.Errorf("Label() = %q, want %q", got.Label(), tc.label)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := FinancialYear(2024, time.April)
	testCases := []struct {
		in   Date
		want bool
	}{
		{New(2024, time.March, 31), false},
		{New(2024, time.April, 1), true},
		{New(2024, time.December, 25), true},
		{New(2025, time.March, 31), true},
		{New(2025, time.April, 1), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.in); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.in, got, tc.want)
		}
	}
	late := time.Date(2025, time.March, 31, 18, 30, 0, 0, time.UTC)
	if !r.ContainsTime(late) {
		t.Errorf("%v.ContainsTime(%v) = false, want true", r, late)
	}
}

func TestNewRange_Swaps(t *testing.T) {
	a, b := New(2025, 1, 1), New(2024, 1, 1)
	if got := NewRange(a, b); got.From != b || got.To != a {
		t.Errorf("NewRange(%v, %v) = %v", a, b, got)
	}
}

func TestFinancialYearOf(t *testing.T) {
	if got, want := FinancialYearOf(New(2025, time.February, 10), time.April), FinancialYear(2024, time.April); got != want {
		t.Errorf("FinancialYearOf() = %v, want %v", got, want)
	}
	if got, want := FinancialYearOf(New(2025, time.April, 1), time.April), FinancialYear(2025, time.April); got != want {
		t.Errorf("FinancialYearOf() = %v, want %v", got, want)
	}
}

func TestFinancialYears(t *testing.T) {
	got := slices.Collect(FinancialYears(New(2023, time.May, 5), New(2025, time.January, 2), time.April))
	want := []Range{
		FinancialYear(2023, time.April),
		FinancialYear(2024, time.April),
	}
	if !slices.Equal(got, want) {
		t.Errorf("FinancialYears() = %v, want %v", got, want)
	}
	if got := slices.Collect(FinancialYears(New(2025, 1, 1), New(2024, 1, 1), time.April)); len(got) != 0 {
		t.Errorf("FinancialYears() on reversed bounds = %v, want none", got)
	}
}

func TestParseFinancialYear(t *testing.T) {
	testCases := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{in: "2024", want: FinancialYear(2024, time.April)},
		{in: "2024-25", want: FinancialYear(2024, time.April)},
		{in: "2024-2025", want: FinancialYear(2024, time.April)},
		{in: "2024-26", wantErr: true},
		{in: "FY24", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFinancialYear(tc.in, time.April)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFinancialYear(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseFinancialYear(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	for in, want := range map[string]time.Month{"april": time.April, "Apr": time.April, "4": time.April, "jan": time.January} {
		got, err := ParseMonth(in)
		if err != nil || got != want {
			t.Errorf("ParseMonth(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"13", "0", "ju", "smarch"} {
		if _, err := ParseMonth(in); err == nil {
			t.Errorf("ParseMonth(%q) expected an error", in)
		}
	}
}
