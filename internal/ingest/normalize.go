package ingest

import (
	"strings"
	"time"

	"pdp-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Rows whose agent cell normalizes to one of these are summary/blank lines,
// not agents.
var skipAgentNames = map[string]struct{}{
	"":            {},
	"nan":         {},
	"total":       {},
	"grand total": {},
}

// NormalizeRow converts one raw report row into an AgentRecord using the
// resolved columns. The second return value is false when the row is a
// blank/total/summary line and must be skipped. Malformed numeric cells never
// fail the row; they normalize to 0.
func NormalizeRow(row []string, cols Columns, importDate time.Time) (models.AgentRecord, bool) {
	agent := strings.TrimSpace(cell(row, cols.Agent))
	if _, skip := skipAgentNames[strings.ToLower(agent)]; skip {
		return models.AgentRecord{}, false
	}

	office := strings.TrimSpace(cell(row, cols.Office))
	if office == "" {
		office = "Unknown"
	}

	current := ParseAmount(cell(row, cols.Current))
	following := ParseAmount(cell(row, cols.Following))

	return models.AgentRecord{
		AgentName:              agent,
		Office:                 office,
		CurrentMonthPromised:   current,
		FollowingMonthPromised: following,
		TotalPromised:          current + following,
		ImportDate:             importDate,
	}, true
}

// ParseAmount parses a currency cell ("$1,234.56") into a non-negative
// amount. Currency symbols and thousands separators are stripped before
// parsing; anything that still fails to parse, and any negative result,
// normalizes to 0.
func ParseAmount(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return 0
	}
	v, _ := d.Float64()
	return v
}

// cell returns row[idx] or "" when the column is unresolved or the row is
// short (trailing empty cells are omitted by the reader).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
