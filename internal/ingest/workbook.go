package ingest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook is returned when the selected sheet has no header row.
var ErrEmptyWorkbook = errors.New("workbook contains no data rows")

// DefaultSheetNames are the conventional sheet names tried, in order, before
// falling back to the workbook's first sheet.
func DefaultSheetNames() []string {
	return []string{"Sheet1", "Data", "Report", "CollectorPerformance"}
}

// Table is the narrow tabular contract handed to the resolver and normalizer:
// a header row plus raw string cells. All semantic interpretation happens
// downstream.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

// OpenTable reads the report at path and extracts its tabular data.
func OpenTable(path string, sheetNames []string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readTable(f, sheetNames)
}

// ReadTable reads a report from r (e.g. an uploaded file stream).
func ReadTable(r io.Reader, sheetNames []string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readTable(f, sheetNames)
}

func readTable(f *excelize.File, sheetNames []string) (*Table, error) {
	sheet := pickSheet(f.GetSheetList(), sheetNames)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}
	return &Table{
		Sheet:   sheet,
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}

// pickSheet returns the first sheet matching a priority name
// (case-insensitive), else the workbook's first sheet.
func pickSheet(available []string, priority []string) string {
	for _, want := range priority {
		for _, name := range available {
			if strings.EqualFold(name, want) {
				return name
			}
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return "Sheet1"
}
