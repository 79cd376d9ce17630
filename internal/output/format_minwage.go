package output

import (
	"fmt"
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
)

// MinWageFormatter renders wage schedule lookups as console text.
type MinWageFormatter struct{}

// Format shows the resolved current rate followed by the schedule's
// full year-by-year table. The row in effect for asOfYear is marked.
func (mf *MinWageFormatter) Format(schedule domain.WageSchedule, rate domain.WageRate, asOfYear int) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(strings.ToUpper(schedule.State)+" MINIMUM WAGE") + "\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("As of %d:   $%s/hr standard, $%s/hr tipped (%d schedule)\n\n",
		asOfYear, rate.Standard.StringFixed(2), rate.Tipped.StringFixed(2), rate.Year))

	sb.WriteString(fmt.Sprintf("%-10s %-10s %-10s %s\n", "Effective", "Standard", "Tipped", "Note"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for _, p := range schedule.Points {
		marker := "  "
		if p.Year == rate.Year {
			marker = "▶ "
		}
		sb.WriteString(fmt.Sprintf("%s%-8s $%-9s $%-9s %s\n",
			marker, p.Date, p.Standard.StringFixed(2), p.Tipped.StringFixed(2), MutedStyle.Render(p.Note)))
	}

	sb.WriteString("\n")
	sb.WriteString(MutedStyle.Render("Values after confirmed agency announcements are estimates."))
	sb.WriteString("\n")

	return sb.String()
}
