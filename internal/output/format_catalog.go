package output

import (
	"fmt"
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
)

// CatalogFormatter renders SNAP item checker results as console text.
type CatalogFormatter struct {
	ShowNotes bool
}

// Format lists matched items with status badges, plus summary counts
// for the whole catalog.
func (cf *CatalogFormatter) Format(items []domain.SNAPItem, total, eligible, notEligible int) string {
	var sb strings.Builder

	sb.WriteString("INDIANA SNAP ELIGIBILITY CHECKER (2026)\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Catalog: %d items (%d eligible, %d not eligible)\n", total, eligible, notEligible))
	sb.WriteString(MutedStyle.Render("Indiana's waiver excludes candy and sugary drinks from SNAP as of Jan 1, 2026; FSSA lists a transition period through March 31, 2026.") + "\n\n")

	if len(items) == 0 {
		sb.WriteString("No items match your search. Try a different term or clear the filters.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Showing %d of %d items\n\n", len(items), total))

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%s  %s  %s\n", StatusBadge(item.Status), item.Name, MutedStyle.Render("["+string(item.Category)+"]")))
		sb.WriteString(fmt.Sprintf("    %s\n", item.Reason))
		if cf.ShowNotes && item.Notes != "" {
			sb.WriteString(MutedStyle.Render("    Note: "+item.Notes) + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(MutedStyle.Render("Always confirm at checkout — retailer POS systems may differ."))
	sb.WriteString("\n")

	return sb.String()
}
