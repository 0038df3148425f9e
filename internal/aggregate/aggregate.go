package aggregate

import (
	"time"

	"pdp-backend/internal/models"

	"github.com/shopspring/decimal"
)

type officeTotals struct {
	current   decimal.Decimal
	following decimal.Decimal
	agents    int
}

// Fold rolls normalized agent records up into one OfficeAggregate per
// distinct office plus a single CompanyAggregate. Offices group by exact
// (case-sensitive) name and are returned in first-seen order so report output
// is reproducible. The agent count increments once per record; two rows for
// the same agent name count twice.
func Fold(records []models.AgentRecord, importDate time.Time) ([]models.OfficeAggregate, models.CompanyAggregate) {
	totals := make(map[string]*officeTotals)
	var order []string

	for _, r := range records {
		t, ok := totals[r.Office]
		if !ok {
			t = &officeTotals{current: decimal.Zero, following: decimal.Zero}
			totals[r.Office] = t
			order = append(order, r.Office)
		}
		t.current = t.current.Add(decimal.NewFromFloat(r.CurrentMonthPromised))
		t.following = t.following.Add(decimal.NewFromFloat(r.FollowingMonthPromised))
		t.agents++
	}

	offices := make([]models.OfficeAggregate, 0, len(order))
	companyCurrent, companyFollowing := decimal.Zero, decimal.Zero
	for _, office := range order {
		t := totals[office]
		grand := t.current.Add(t.following)
		cur, _ := t.current.Float64()
		fol, _ := t.following.Float64()
		g, _ := grand.Float64()
		offices = append(offices, models.OfficeAggregate{
			Office:              office,
			CurrentMonthTotal:   cur,
			FollowingMonthTotal: fol,
			GrandTotal:          g,
			AgentCount:          t.agents,
			ImportDate:          importDate,
		})
		companyCurrent = companyCurrent.Add(t.current)
		companyFollowing = companyFollowing.Add(t.following)
	}

	cur, _ := companyCurrent.Float64()
	fol, _ := companyFollowing.Float64()
	grand, _ := companyCurrent.Add(companyFollowing).Float64()
	company := models.CompanyAggregate{
		TotalCurrentMonth:   cur,
		TotalFollowingMonth: fol,
		GrandTotal:          grand,
		TotalAgents:         len(records),
		TotalOffices:        len(order),
		ImportDate:          importDate,
	}
	return offices, company
}
