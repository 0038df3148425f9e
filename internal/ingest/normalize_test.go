package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCols = Columns{Agent: 0, Office: 1, Current: 2, Following: 3}

func TestNormalizeRow_ValidRow(t *testing.T) {
	importDate := time.Now()
	rec, ok := NormalizeRow([]string{" John Smith ", "North", "$1,234.56", "500"}, testCols, importDate)
	require.True(t, ok)
	assert.Equal(t, "John Smith", rec.AgentName)
	assert.Equal(t, "North", rec.Office)
	assert.Equal(t, 1234.56, rec.CurrentMonthPromised)
	assert.Equal(t, 500.0, rec.FollowingMonthPromised)
	assert.InDelta(t, 1734.56, rec.TotalPromised, 1e-9)
	assert.Equal(t, importDate, rec.ImportDate)
}

func TestNormalizeRow_SkipsSummaryRows(t *testing.T) {
	for _, agent := range []string{"", "  ", "nan", "NaN", "Total", "Grand Total", "GRAND TOTAL"} {
		_, ok := NormalizeRow([]string{agent, "North", "100", "50"}, testCols, time.Now())
		assert.False(t, ok, "agent cell %q should be skipped", agent)
	}
}

func TestNormalizeRow_OfficeDefaultsToUnknown(t *testing.T) {
	rec, ok := NormalizeRow([]string{"John", "", "100", "50"}, testCols, time.Now())
	require.True(t, ok)
	assert.Equal(t, "Unknown", rec.Office)

	// Office column unresolved entirely.
	cols := Columns{Agent: 0, Office: -1, Current: 1, Following: 2}
	rec, ok = NormalizeRow([]string{"John", "100", "50"}, cols, time.Now())
	require.True(t, ok)
	assert.Equal(t, "Unknown", rec.Office)
}

func TestNormalizeRow_ShortRow(t *testing.T) {
	// Trailing empty cells are dropped by the workbook reader; amounts
	// normalize to 0 instead of failing the row.
	rec, ok := NormalizeRow([]string{"John"}, testCols, time.Now())
	require.True(t, ok)
	assert.Equal(t, 0.0, rec.CurrentMonthPromised)
	assert.Equal(t, 0.0, rec.FollowingMonthPromised)
	assert.Equal(t, 0.0, rec.TotalPromised)
}

func TestNormalizeRow_TotalAlwaysComputed(t *testing.T) {
	rec, ok := NormalizeRow([]string{"John", "X", "100.25", "49.75"}, testCols, time.Now())
	require.True(t, ok)
	assert.Equal(t, rec.CurrentMonthPromised+rec.FollowingMonthPromised, rec.TotalPromised)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"1234.56", 1234.56},
		{"  $500 ", 500},
		{"€2,000.50", 2000.50},
		{"£75", 75},
		{"N/A", 0},
		{"nan", 0},
		{"", 0},
		{"abc", 0},
		{"-100", 0}, // promised amounts are never negative
		{"0", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseAmount(tc.in), "ParseAmount(%q)", tc.in)
	}
}
