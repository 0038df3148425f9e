package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadTable_HeadersAndRows(t *testing.T) {
	buf := workbookBytes(t, "Sheet1", [][]interface{}{
		{"Agent", "Office", "Current", "Following"},
		{"John", "North", 100, 50},
		{"Jane", "South", 200, 75},
	})
	table, err := ReadTable(buf, DefaultSheetNames())
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", table.Sheet)
	assert.Equal(t, []string{"Agent", "Office", "Current", "Following"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "John", table.Rows[0][0])
}

func TestReadTable_PrefersConventionalSheetName(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Report")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"wrong"}))
	require.NoError(t, f.SetSheetName("Sheet1", "Scratch"))
	require.NoError(t, f.SetSheetRow("Report", "A1", &[]interface{}{"Agent"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := ReadTable(buf, DefaultSheetNames())
	require.NoError(t, err)
	assert.Equal(t, "Report", table.Sheet)
}

func TestReadTable_FallsBackToFirstSheet(t *testing.T) {
	buf := workbookBytes(t, "Week 32", [][]interface{}{
		{"Agent", "Office"},
		{"John", "North"},
	})
	table, err := ReadTable(buf, DefaultSheetNames())
	require.NoError(t, err)
	assert.Equal(t, "Week 32", table.Sheet)
}

func TestReadTable_UnreadableInput(t *testing.T) {
	_, err := ReadTable(bytes.NewBufferString("not a workbook"), DefaultSheetNames())
	assert.Error(t, err)
}
