package ingest

import (
	"errors"
	"strings"
)

// Field is a canonical semantic field a report column can resolve to.
type Field string

const (
	FieldAgent     Field = "agent"
	FieldOffice    Field = "office"
	FieldCurrent   Field = "current"
	FieldFollowing Field = "following"
)

// ErrAgentColumnNotFound aborts an import: without an agent column no row can
// be attributed, so nothing is written.
var ErrAgentColumnNotFound = errors.New("could not identify agent column")

// Matcher maps one semantic field to its ranked keyword substrings.
type Matcher struct {
	Field    Field
	Keywords []string
}

// DefaultMatchers returns the keyword tables used for conventional collection
// reports. Callers with unusual headers can pass their own set.
func DefaultMatchers() []Matcher {
	return []Matcher{
		{Field: FieldAgent, Keywords: []string{"agent", "collector", "name", "employee"}},
		{Field: FieldOffice, Keywords: []string{"office", "location", "branch", "dept"}},
		{Field: FieldCurrent, Keywords: []string{"current", "this month", "current month"}},
		{Field: FieldFollowing, Keywords: []string{"following", "next month", "following month"}},
	}
}

// Columns holds the resolved header index per field; -1 means unresolved.
type Columns struct {
	Agent     int
	Office    int
	Current   int
	Following int
}

// ResolveColumns matches each field against the header row. Headers are
// scanned in their original order and keywords in priority order; the first
// header whose lowercased text contains a keyword wins. Only the agent field
// is mandatory.
func ResolveColumns(headers []string, matchers []Matcher) (Columns, error) {
	cols := Columns{Agent: -1, Office: -1, Current: -1, Following: -1}
	for _, m := range matchers {
		idx := findColumn(headers, m.Keywords)
		switch m.Field {
		case FieldAgent:
			cols.Agent = idx
		case FieldOffice:
			cols.Office = idx
		case FieldCurrent:
			cols.Current = idx
		case FieldFollowing:
			cols.Following = idx
		}
	}
	if cols.Agent < 0 {
		return cols, ErrAgentColumnNotFound
	}
	return cols, nil
}

func findColumn(headers []string, keywords []string) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return i
			}
		}
	}
	return -1
}
