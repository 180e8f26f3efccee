package cmd

import (
	"flag"
	"testing"

	"github.com/etnz/capgains/date"
)

func TestPeriodFlags_Range(t *testing.T) {
	testCases := []struct {
		args []string
		want date.Range
	}{
		{nil, date.NewRange(date.New(2024, 4, 1), date.New(2025, 3, 31))},
		{[]string{"-fy", "2023"}, date.NewRange(date.New(2023, 4, 1), date.New(2024, 3, 31))},
		{[]string{"-fy", "2023-24"}, date.NewRange(date.New(2023, 4, 1), date.New(2024, 3, 31))},
		{[]string{"-fy-start", "january", "-fy", "2024"}, date.NewRange(date.New(2024, 1, 1), date.New(2024, 12, 31))},
		{[]string{"-s", "2024-06-01"}, date.NewRange(date.New(2024, 6, 1), date.New(2025, 3, 31))},
		{[]string{"-s", "2024-01-01", "-d", "2024-06-30"}, date.NewRange(date.New(2024, 1, 1), date.New(2024, 6, 30))},
	}
	for _, tc := range testCases {
		var p periodFlags
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		p.SetFlags(fs)
		if err := fs.Parse(tc.args); err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.args, err)
		}
		got, err := p.Range()
		if err != nil {
			t.Errorf("Range(%q) failed: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Range(%q) = %v, want %v", tc.args, got, tc.want)
		}
	}
}

func TestPeriodFlags_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-fy", "twenty"},
		{"-fy", "2024-27"},
		{"-fy-start", "ju"},
		{"-s", "yesterday"},
		{"-s", "2025-01-01", "-d", "2024-01-01"},
	} {
		var p periodFlags
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		p.SetFlags(fs)
		if err := fs.Parse(args); err != nil {
			t.Fatalf("Parse(%q) failed: %v", args, err)
		}
		if _, err := p.Range(); err == nil {
			t.Errorf("Range(%q) should fail", args)
		}
	}
}
