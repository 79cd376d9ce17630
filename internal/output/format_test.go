package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwcivic/civictools/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected string
	}{
		{name: "Zero", value: decimal.Zero, expected: "0"},
		{name: "Under a thousand", value: decimal.NewFromInt(768), expected: "768"},
		{name: "Thousands separator", value: decimal.NewFromInt(5262), expected: "5,262"},
		{name: "Millions", value: decimal.NewFromInt(1234567), expected: "1,234,567"},
		{name: "Rounds cents away", value: decimal.NewFromFloat(3420.30), expected: "3,420"},
		{name: "Negative", value: decimal.NewFromInt(-1500), expected: "-1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCurrency(tt.value))
		})
	}
}

func TestChartRender(t *testing.T) {
	chart := NewChart("Monthly Benefits vs. Income").
		AddSeries("SNAP", []float64{768, 600, 400, 0}, ColorCivicBlue).
		AddSeries("Total", []float64{1568, 1400, 1200, 800}, ColorRed).
		WithLabels([]string{"$0", "$1,000", "$2,000", "$3,000"}).
		WithAxisLabel("Monthly gross income")

	rendered := chart.Render()
	assert.Contains(t, rendered, "Monthly Benefits vs. Income")
	assert.Contains(t, rendered, "SNAP")
	assert.Contains(t, rendered, "Total")
	assert.Contains(t, rendered, "Monthly gross income")
	require.Greater(t, len(strings.Split(rendered, "\n")), 10, "chart should span multiple rows")
}

func TestChartRenderEmpty(t *testing.T) {
	assert.Contains(t, NewChart("Empty").Render(), "No data to display")
}

func TestBenefitsFormatter(t *testing.T) {
	report := BenefitsReport{
		HouseholdSize: 3,
		Income:        decimal.NewFromInt(1000),
		PovertyLine:   decimal.NewFromInt(2631),
		SNAP:          decimal.NewFromInt(528),
		Childcare:     decimal.NewFromInt(800),
		Points: []domain.BenefitPoint{
			{Income: decimal.Zero, SNAP: decimal.NewFromInt(768), Childcare: decimal.NewFromInt(800), Total: decimal.NewFromInt(1568)},
			{Income: decimal.NewFromInt(3000), SNAP: decimal.NewFromInt(48), Childcare: decimal.NewFromInt(800), Total: decimal.NewFromInt(848)},
		},
		Warning: &domain.CliffWarning{
			Type:        domain.CliffSNAP,
			CliffIncome: decimal.NewFromFloat(3420.30),
			LossAmount:  decimal.NewFromInt(48),
		},
	}

	formatter := &BenefitsFormatter{}
	out := formatter.Format(report)

	assert.Contains(t, out, "BENEFITS CLIFF ESTIMATE")
	assert.Contains(t, out, "Household Size:      3")
	assert.Contains(t, out, "Estimated SNAP:      $528/mo")
	assert.Contains(t, out, "Total Benefits:      $1,328/mo")
	assert.Contains(t, out, "BENEFIT CLIFF AHEAD")
	assert.Contains(t, out, "SNAP benefits end at $3,420/mo")
	assert.Contains(t, out, "Estimates only")
}

func TestBenefitsFormatterNoWarning(t *testing.T) {
	report := BenefitsReport{
		HouseholdSize: 2,
		Income:        decimal.NewFromInt(6000),
		PovertyLine:   decimal.NewFromInt(2086),
		SNAP:          decimal.Zero,
		Childcare:     decimal.Zero,
	}

	out := (&BenefitsFormatter{}).Format(report)
	assert.NotContains(t, out, "BENEFIT CLIFF AHEAD")
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, StatusBadge(domain.StatusEligible), "ELIGIBLE")
	assert.Contains(t, StatusBadge(domain.StatusNotEligible), "NOT ELIGIBLE")
	assert.Contains(t, StatusBadge(domain.StatusCheckLabel), "CHECK LABEL")
}
