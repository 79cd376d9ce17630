package output

import (
	"fmt"
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
	"github.com/shopspring/decimal"
)

// ScholarshipFormatter renders county award estimates as console text.
type ScholarshipFormatter struct{}

// CorporationAward pairs a school corporation with its estimated award.
type CorporationAward struct {
	Corporation domain.SchoolCorporation
	Award       decimal.Decimal
}

// Format lists each corporation's estimated Choice Scholarship award
// for one county, with the statewide range for context.
func (sf *ScholarshipFormatter) Format(county string, awards []CorporationAward, rangeMin, rangeMax decimal.Decimal) string {
	var sb strings.Builder

	sb.WriteString("CHOICE SCHOLARSHIP ESTIMATE\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("County: %s\n\n", county))

	if len(awards) == 0 {
		sb.WriteString(fmt.Sprintf("No school corporations found for %q. Use --list to see county names.\n", county))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-52s %-10s %s\n", "School Corporation", "Tier", "Est. Award"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for _, a := range awards {
		sb.WriteString(fmt.Sprintf("%-52s %-10s $%s\n",
			a.Corporation.Name, a.Corporation.Tier, formatCurrency(a.Award)))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Statewide awards generally range from $%s to $%s.\n",
		formatCurrency(rangeMin), formatCurrency(rangeMax)))
	sb.WriteString(MutedStyle.Render("Awards are approximately 90% of the district's per-pupil public funding. HEA 1001-2025 removes the income limit beginning June 29, 2026."))
	sb.WriteString("\n")

	return sb.String()
}
