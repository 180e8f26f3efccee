package capgains

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DefaultReportFile is the file the gains report is saved to by default.
const DefaultReportFile = "pnl_statement.csv"

// GainsColumns is the header of the CSV gains report.
var GainsColumns = []string{
	"date of acquisition",
	"date of transfer",
	"cost of acquisition",
	"consideration received",
	"income",
	"coin name (market)",
}

// EncodeGainsCSV writes one CSV record per disposal of the report, after a
// header. Amounts are written exact, not rounded.
func EncodeGainsCSV(w io.Writer, r *GainsReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(GainsColumns); err != nil {
		return fmt.Errorf("cannot write gains report header: %w", err)
	}
	for _, d := range r.Disposals {
		record := []string{
			d.Acquired.Format(timestampFormat),
			d.Disposed.Format(timestampFormat),
			d.CostBasis.Exact(),
			d.Proceeds.Exact(),
			d.Gain.Exact(),
			d.Asset,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write gains report: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalJSON writes the disposal as a JSON object with a stable field order.
func (d Disposal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asset", d.Asset)
	w.Append("acquired", d.Acquired.Format(timestampFormat))
	w.Append("disposed", d.Disposed.Format(timestampFormat))
	w.Append("quantity", d.Quantity)
	w.Optional("currency", d.Gain.Currency())
	w.Append("costBasis", d.CostBasis.Decimal())
	w.Append("proceeds", d.Proceeds.Decimal())
	w.Append("gain", d.Gain.Decimal())
	return w.MarshalJSON()
}

// EncodeGainsJSONL writes one JSON object per line for each disposal of the report.
func EncodeGainsJSONL(w io.Writer, r *GainsReport) error {
	for _, d := range r.Disposals {
		data, err := d.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal disposal of %q: %w", d.Asset, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write gains report: %w", err)
		}
	}
	return nil
}

// SaveGains saves the report to file, as JSONL if file ends with ".jsonl",
// as CSV otherwise. The file's directory is created if needed.
func SaveGains(file string, r *GainsReport) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("could not create directory for report %q: %w", file, err)
	}
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("error opening report file %q for writing: %w", file, err)
	}
	defer f.Close()

	encode := EncodeGainsCSV
	if filepath.Ext(file) == ".jsonl" {
		encode = EncodeGainsJSONL
	}
	if err := encode(f, r); err != nil {
		return fmt.Errorf("could not save report %q: %w", file, err)
	}
	log.Printf("create-report-file name=%q disposals=%d", file, len(r.Disposals))
	return f.Close()
}
