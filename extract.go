package capgains

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheets of a trade report workbook that hold trades, and the prefix of the
// CSV file each one is extracted to.
var tradeSheets = []struct{ sheet, prefix string }{
	{"Exchange Trades", "Exchange_Trades_"},
	{"P2P Trades", "P2P_Trades_"},
}

// reportName derives the name shared by the CSV files extracted from a
// workbook: "WazirX_TradeReport_2024-04-01_2025-03-31.xlsx" gives "2024_2025".
func reportName(workbook string) string {
	name := strings.TrimSuffix(filepath.Base(workbook), ".xlsx")
	name = strings.TrimPrefix(name, "WazirX_TradeReport_")
	name = strings.ReplaceAll(name, "-04-01", "")
	name = strings.ReplaceAll(name, "-03-31", "")
	return name
}

// ExtractWorkbook writes each trade sheet of the workbook to a CSV file in
// outDir and returns the files written. Missing sheets are skipped.
func ExtractWorkbook(workbook, outDir string) ([]string, error) {
	f, err := excelize.OpenFile(workbook)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %q: %w", workbook, err)
	}
	defer f.Close()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output directory %q: %w", outDir, err)
	}

	sheets := f.GetSheetList()
	name := reportName(workbook)
	var written []string
	for _, ts := range tradeSheets {
		if !slices.Contains(sheets, ts.sheet) {
			log.Printf("skip-sheet workbook=%q sheet=%q reason=missing", workbook, ts.sheet)
			continue
		}
		rows, err := sheetRows(f, ts.sheet)
		if err != nil {
			return written, fmt.Errorf("cannot read sheet %q of %q: %w", ts.sheet, workbook, err)
		}
		out := filepath.Join(outDir, ts.prefix+name+".csv")
		if err := writeCSV(out, rows); err != nil {
			return written, err
		}
		log.Printf("extract-sheet workbook=%q sheet=%q name=%q rows=%d", workbook, ts.sheet, out, len(rows))
		written = append(written, out)
	}
	return written, nil
}

// sheetRows returns the cells of a sheet as text. Numbers are kept as stored,
// not as displayed, and date cells are written in the trade timestamp format.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	date1904 := props.Date1904 != nil && *props.Date1904

	isDate := make(map[int]bool) // by style index
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			idx, err := f.GetCellStyle(sheet, cell)
			if err != nil {
				return nil, err
			}
			date, ok := isDate[idx]
			if !ok {
				if style, err := f.GetStyle(idx); err == nil {
					date = isDateStyle(style)
				}
				isDate[idx] = date
			}
			if !date {
				continue
			}
			serial, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			t, err := excelize.ExcelDateToTime(serial, date1904)
			if err != nil {
				return nil, fmt.Errorf("invalid date in cell %s: %w", cell, err)
			}
			row[c] = t.Format(timestampFormat)
		}
	}
	return rows, nil
}

// isDateStyle reports whether the style's number format displays a date or a
// time.
func isDateStyle(style *excelize.Style) bool {
	if style.CustomNumFmt != nil {
		code := strings.ToLower(*style.CustomNumFmt)
		code = bracketed.ReplaceAllString(code, "")
		return strings.ContainsAny(code, "ydh")
	}
	switch n := style.NumFmt; {
	case n >= 14 && n <= 22, n >= 27 && n <= 36, n >= 45 && n <= 47, n >= 50 && n <= 58:
		return true
	}
	return false
}

// bracketed matches the colors, locales, elapsed time markers and quoted
// literals of a number format code.
var bracketed = regexp.MustCompile(`\[[^\]]*\]|"[^"]*"`)

// ExtractWorkbooks extracts every "*.xlsx" workbook of inDir into outDir.
func ExtractWorkbooks(inDir, outDir string) ([]string, error) {
	workbooks, err := filepath.Glob(filepath.Join(inDir, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	slices.Sort(workbooks)
	var written []string
	for _, wb := range workbooks {
		files, err := ExtractWorkbook(wb, outDir)
		written = append(written, files...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// writeCSV writes rows to file. Rows are padded to the header width since
// spreadsheets drop trailing empty cells.
func writeCSV(file string, rows [][]string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", file, err)
	}
	defer f.Close()

	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	w := csv.NewWriter(f)
	for _, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("cannot write %q: %w", file, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write %q: %w", file, err)
	}
	return f.Close()
}
