package output

import (
	"fmt"
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
	"github.com/shopspring/decimal"
)

// BenefitsReport bundles everything the benefits command displays.
type BenefitsReport struct {
	HouseholdSize int
	Income        decimal.Decimal
	PovertyLine   decimal.Decimal
	SNAP          decimal.Decimal
	Childcare     decimal.Decimal
	Points        []domain.BenefitPoint
	Warning       *domain.CliffWarning
}

// BenefitsFormatter renders a benefits-cliff report as console text.
type BenefitsFormatter struct{}

// Format generates the summary, chart, and cliff warning panel.
func (bf *BenefitsFormatter) Format(r BenefitsReport) string {
	var sb strings.Builder

	sb.WriteString("BENEFITS CLIFF ESTIMATE\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Household Size:      %d\n", r.HouseholdSize))
	sb.WriteString(fmt.Sprintf("Monthly Income:      $%s\n", formatCurrency(r.Income)))
	sb.WriteString(fmt.Sprintf("Poverty Line (FPL):  $%s/mo\n", formatCurrency(r.PovertyLine)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Estimated SNAP:      $%s/mo\n", formatCurrency(r.SNAP)))
	sb.WriteString(fmt.Sprintf("Childcare Subsidy:   $%s/mo\n", formatCurrency(r.Childcare)))
	sb.WriteString(fmt.Sprintf("Total Benefits:      $%s/mo\n", formatCurrency(r.SNAP.Add(r.Childcare))))
	sb.WriteString("\n")

	if len(r.Points) > 1 {
		sb.WriteString(bf.renderChart(r.Points))
		sb.WriteString("\n\n")
	}

	if r.Warning != nil {
		sb.WriteString(bf.renderWarning(r.Warning))
		sb.WriteString("\n")
	}

	sb.WriteString(MutedStyle.Render("Estimates only. The SNAP amount uses a simplified formula; apply through Indiana FSSA for an official determination."))
	sb.WriteString("\n")

	return sb.String()
}

func (bf *BenefitsFormatter) renderChart(points []domain.BenefitPoint) string {
	snap := make([]float64, len(points))
	childcare := make([]float64, len(points))
	total := make([]float64, len(points))
	labels := make([]string, len(points))

	for i, p := range points {
		snap[i] = p.SNAP.InexactFloat64()
		childcare[i] = p.Childcare.InexactFloat64()
		total[i] = p.Total.InexactFloat64()
		labels[i] = "$" + formatCurrency(p.Income)
	}

	return NewChart("Monthly Benefits vs. Income").
		AddSeries("SNAP", snap, ColorCivicBlue).
		AddSeries("Childcare", childcare, ColorGreen).
		AddSeries("Total", total, ColorRed).
		WithLabels(labels).
		WithAxisLabel("Monthly gross income").
		Render()
}

func (bf *BenefitsFormatter) renderWarning(w *domain.CliffWarning) string {
	var sb strings.Builder
	sb.WriteString(WarnStyle.Render("⚠ BENEFIT CLIFF AHEAD"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s benefits end at $%s/mo of income.\n", w.Type, formatCurrency(w.CliffIncome)))
	sb.WriteString(fmt.Sprintf("Crossing that line means losing about $%s/mo.\n", formatCurrency(w.LossAmount)))
	sb.WriteString("A small raise near this threshold can leave the household worse off overall.\n")
	return sb.String()
}
