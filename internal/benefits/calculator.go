package benefits

import (
	"github.com/mwcivic/civictools/internal/domain"
	"github.com/shopspring/decimal"
)

// BENEFIT CALCULATION ASSUMPTIONS:
//
// 1. FPL values: derived monthly figures based on USDA FY 2026 SNAP
//    gross income limits, household sizes 1-8. Sizes above 8 use the
//    size-8 row.
//
// 2. SNAP: gross income limit is 130% of FPL. The benefit amount is a
//    simplified model: net income = gross x 0.8 (flat 20% earned income
//    deduction), benefit = max benefit - 30% of net income, floored at
//    zero. The real formula applies several more deductions; this one is
//    intentionally approximate and is used for cliff visualization only.
//
// 3. Childcare subsidy: binary cliff at 200% of FPL. The $800/month
//    subsidy value is an Indiana statewide average estimate; actual
//    amounts vary by provider and child age.

// Calculator evaluates means-tested benefit amounts against the federal
// poverty line. The tables are fixed at construction and never mutated,
// so a single Calculator is safe for concurrent use.
type Calculator struct {
	fplMonthly        map[int]decimal.Decimal
	maxSNAPBenefit    map[int]decimal.Decimal
	grossLimitPct     decimal.Decimal
	childcareLimitPct decimal.Decimal
	childcareSubsidy  decimal.Decimal
	warningBand       decimal.Decimal
}

// NewCalculator creates a benefit calculator loaded with USDA FY 2026
// values.
func NewCalculator() *Calculator {
	return &Calculator{
		fplMonthly: map[int]decimal.Decimal{
			1: decimal.NewFromInt(1542),
			2: decimal.NewFromInt(2086),
			3: decimal.NewFromInt(2631),
			4: decimal.NewFromInt(3175),
			5: decimal.NewFromInt(3719),
			6: decimal.NewFromInt(4263),
			7: decimal.NewFromInt(4807),
			8: decimal.NewFromInt(5352),
		},
		maxSNAPBenefit: map[int]decimal.Decimal{
			1: decimal.NewFromInt(292),
			2: decimal.NewFromInt(536),
			3: decimal.NewFromInt(768),
			4: decimal.NewFromInt(975),
			5: decimal.NewFromInt(1158),
			6: decimal.NewFromInt(1390),
			7: decimal.NewFromInt(1536),
			8: decimal.NewFromInt(1756),
		},
		grossLimitPct:     decimal.NewFromFloat(1.3),
		childcareLimitPct: decimal.NewFromFloat(2.0),
		childcareSubsidy:  decimal.NewFromInt(800),
		warningBand:       decimal.NewFromInt(200),
	}
}

// clampSize folds any household size into the tabulated range 1-8.
// Negative and zero sizes are treated as a household of one rather than
// propagating a missing-row lookup into the arithmetic.
func (c *Calculator) clampSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > 8 {
		return 8
	}
	return size
}

// PovertyLine returns the monthly FPL for a household size.
func (c *Calculator) PovertyLine(size int) decimal.Decimal {
	return c.fplMonthly[c.clampSize(size)]
}

// MaxSNAPBenefit returns the maximum monthly SNAP benefit for a
// household size.
func (c *Calculator) MaxSNAPBenefit(size int) decimal.Decimal {
	return c.maxSNAPBenefit[c.clampSize(size)]
}

// SNAPBenefit calculates the estimated monthly SNAP benefit at a given
// monthly gross income. Returns zero above the 130% FPL gross income
// limit.
func (c *Calculator) SNAPBenefit(monthlyIncome decimal.Decimal, householdSize int) decimal.Decimal {
	grossLimit := c.PovertyLine(householdSize).Mul(c.grossLimitPct)
	if monthlyIncome.GreaterThan(grossLimit) {
		return decimal.Zero
	}

	// SNAP reduces by ~30 cents per dollar of net income; net income is
	// modeled as gross less a flat 20% earned income deduction.
	netIncome := monthlyIncome.Mul(decimal.NewFromFloat(0.8))
	reduction := netIncome.Mul(decimal.NewFromFloat(0.3))

	benefit := c.MaxSNAPBenefit(householdSize).Sub(reduction)
	if benefit.IsNegative() {
		return decimal.Zero
	}
	return benefit
}

// ChildcareBenefit calculates the estimated monthly childcare subsidy at
// a given monthly gross income. Binary cliff: full subsidy at or below
// 200% FPL, zero above.
func (c *Calculator) ChildcareBenefit(monthlyIncome decimal.Decimal, householdSize int) decimal.Decimal {
	limit := c.PovertyLine(householdSize).Mul(c.childcareLimitPct)
	if monthlyIncome.LessThanOrEqual(limit) {
		return c.childcareSubsidy
	}
	return decimal.Zero
}

// GeneratePoints samples both benefits across incomes 0..maxIncome
// inclusive in step increments. A pure function of its inputs; step must
// be positive or no points are produced.
func (c *Calculator) GeneratePoints(householdSize int, maxIncome, step decimal.Decimal) []domain.BenefitPoint {
	if step.Sign() <= 0 {
		return nil
	}

	var points []domain.BenefitPoint
	for income := decimal.Zero; income.LessThanOrEqual(maxIncome); income = income.Add(step) {
		snap := c.SNAPBenefit(income, householdSize).Round(0)
		childcare := c.ChildcareBenefit(income, householdSize)
		points = append(points, domain.BenefitPoint{
			Income:    income,
			SNAP:      snap,
			Childcare: childcare,
			Total:     snap.Add(childcare),
		})
	}
	return points
}

// NearbyCliff reports the benefit cliff within $200 above the queried
// income, or nil when none is close. The SNAP threshold is checked
// first; the childcare threshold is only considered when the SNAP check
// did not match. Income exactly at a threshold still counts as below it.
func (c *Calculator) NearbyCliff(monthlyIncome decimal.Decimal, householdSize int) *domain.CliffWarning {
	fpl := c.PovertyLine(householdSize)
	snapCliff := fpl.Mul(c.grossLimitPct)
	childcareCliff := fpl.Mul(c.childcareLimitPct)

	if monthlyIncome.LessThanOrEqual(snapCliff) && snapCliff.Sub(monthlyIncome).LessThanOrEqual(c.warningBand) {
		return &domain.CliffWarning{
			Type:        domain.CliffSNAP,
			CliffIncome: snapCliff.Round(0),
			LossAmount:  c.SNAPBenefit(monthlyIncome, householdSize).Round(0),
		}
	}

	if monthlyIncome.LessThanOrEqual(childcareCliff) && childcareCliff.Sub(monthlyIncome).LessThanOrEqual(c.warningBand) {
		return &domain.CliffWarning{
			Type:        domain.CliffChildcare,
			CliffIncome: childcareCliff.Round(0),
			LossAmount:  c.childcareSubsidy,
		}
	}

	return nil
}

// ChildcareSubsidy returns the flat monthly subsidy value used by the
// childcare cliff model.
func (c *Calculator) ChildcareSubsidy() decimal.Decimal {
	return c.childcareSubsidy
}
