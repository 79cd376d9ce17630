package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwcivic/civictools/internal/domain"
)

// Palette carried over from the site design.
var (
	ColorCivicBlue = lipgloss.Color("#1a56db")
	ColorRed       = lipgloss.Color("#c81e1e")
	ColorGreen     = lipgloss.Color("#057a55")
	ColorOrange    = lipgloss.Color("#d97706")
	ColorMuted     = lipgloss.Color("245")
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCivicBlue)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	WarnStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorOrange)

	eligibleBadge    = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	notEligibleBadge = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	checkLabelBadge  = lipgloss.NewStyle().Bold(true).Foreground(ColorOrange)
)

// StatusBadge renders the colored status marker for a catalog item.
func StatusBadge(status domain.SNAPStatus) string {
	switch status {
	case domain.StatusEligible:
		return eligibleBadge.Render("✓ ELIGIBLE")
	case domain.StatusNotEligible:
		return notEligibleBadge.Render("✗ NOT ELIGIBLE")
	default:
		return checkLabelBadge.Render("⚠ CHECK LABEL")
	}
}
