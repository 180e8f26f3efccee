package capgains

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func scenarioAReport(t *testing.T) *GainsReport {
	t.Helper()
	report, err := ComputeGains(mustLedger(
		buy(day(1), "BTCINR", 10, 100),
		buy(day(2), "BTCINR", 5, 120),
		sell(day(3), "BTCINR", 12, 150.5),
	), fy2024)
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}
	return report
}

func TestEncodeGainsCSV(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeGainsCSV(&b, scenarioAReport(t)); err != nil {
		t.Fatalf("EncodeGainsCSV() error = %v", err)
	}
	records, err := csv.NewReader(&b).ReadAll()
	if err != nil {
		t.Fatalf("cannot read back CSV: %v", err)
	}
	want := [][]string{
		GainsColumns,
		{"2024-04-01 12:00:00", "2024-04-03 12:00:00", "1000", "1505", "505", "BTCINR"},
		{"2024-04-02 12:00:00", "2024-04-03 12:00:00", "240", "301", "61", "BTCINR"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d:\n%v", len(records), len(want), records)
	}
	for i := range want {
		if strings.Join(records[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("record #%d = %v, want %v", i, records[i], want[i])
		}
	}
}

func TestEncodeGainsCSV_Empty(t *testing.T) {
	var b bytes.Buffer
	j, _ := ReplayLedger(mustLedger())
	if err := EncodeGainsCSV(&b, j.Gains(fy2024)); err != nil {
		t.Fatalf("EncodeGainsCSV() error = %v", err)
	}
	if got, want := b.String(), strings.Join(GainsColumns, ",")+"\n"; got != want {
		t.Errorf("EncodeGainsCSV() = %q, want %q", got, want)
	}
}

func TestEncodeGainsJSONL(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeGainsJSONL(&b, scenarioAReport(t)); err != nil {
		t.Fatalf("EncodeGainsJSONL() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), b.String())
	}
	want := `{"asset":"BTCINR","acquired":"2024-04-02 12:00:00","disposed":"2024-04-03 12:00:00","quantity":"2","currency":"INR","costBasis":"240","proceeds":"301","gain":"61"}`
	if lines[1] != want {
		t.Errorf("line #1 = %s\nwant      %s", lines[1], want)
	}
}

func TestSaveGains(t *testing.T) {
	dir := t.TempDir()
	report := scenarioAReport(t)
	for _, name := range []string{"out/pnl_statement.csv", "out/pnl.jsonl"} {
		file := filepath.Join(dir, name)
		if err := SaveGains(file, report); err != nil {
			t.Fatalf("SaveGains(%q) error = %v", name, err)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("cannot read %q: %v", file, err)
		}
		isJSON := strings.HasPrefix(string(data), "{")
		if isJSON != strings.HasSuffix(name, ".jsonl") {
			t.Errorf("SaveGains(%q) wrote %q", name, data)
		}
	}
}
