package reports

import (
	"fmt"
	"strconv"
	"strings"

	"pdp-backend/internal/models"
)

// Format renders a snapshot into the progress report text block. Pure
// function: offices are printed in the order given (callers pass them grand
// total descending).
func Format(baseline *models.Baseline, company *models.CompanyAggregate, offices []models.OfficeAggregate) string {
	var b strings.Builder

	b.WriteString("\nPOST DATED PAYMENT (PDP) PROGRESS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Baseline: %s\n", baseline.Name)
	fmt.Fprintf(&b, "Date: %s\n", baseline.BaselineDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Description: %s\n\n", baseline.Description)

	b.WriteString("CURRENT TOTALS:\n")
	fmt.Fprintf(&b, "- Current Month Promised: %s\n", FormatMoney(company.TotalCurrentMonth))
	fmt.Fprintf(&b, "- Following Month Promised: %s\n", FormatMoney(company.TotalFollowingMonth))
	fmt.Fprintf(&b, "- Grand Total: %s\n\n", FormatMoney(company.GrandTotal))

	b.WriteString("TEAM METRICS:\n")
	fmt.Fprintf(&b, "- Total Agents: %d\n", company.TotalAgents)
	fmt.Fprintf(&b, "- Total Offices: %d\n", company.TotalOffices)
	fmt.Fprintf(&b, "- Average per Agent: %s\n\n", averagePerAgent(company))

	if len(offices) > 0 {
		b.WriteString("OFFICE BREAKDOWN:\n")
		for _, o := range offices {
			fmt.Fprintf(&b, "- %s: %s (%d agents)\n", o.Office, FormatMoney(o.GrandTotal), o.AgentCount)
		}
	}

	return b.String()
}

func averagePerAgent(company *models.CompanyAggregate) string {
	if company.TotalAgents == 0 {
		return "N/A"
	}
	return FormatMoney(company.GrandTotal / float64(company.TotalAgents))
}

// FormatMoney renders a dollar amount with thousands separators and two
// decimal places, e.g. 1234.5 -> "$1,234.50".
func FormatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}
	return sign + "$" + grouped.String() + "." + fracPart
}
