package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mwcivic/civictools/internal/benefits"
	"github.com/mwcivic/civictools/internal/output"
)

func newBenefitsCmd() *cobra.Command {
	var (
		size      int
		income    float64
		maxIncome float64
		step      float64
	)

	cmd := &cobra.Command{
		Use:   "benefits",
		Short: "Estimate SNAP and childcare benefits and warn about nearby cliffs",
		Run: func(cmd *cobra.Command, args []string) {
			calc := benefits.NewCalculator()
			monthlyIncome := decimal.NewFromFloat(income)

			report := output.BenefitsReport{
				HouseholdSize: size,
				Income:        monthlyIncome,
				PovertyLine:   calc.PovertyLine(size),
				SNAP:          calc.SNAPBenefit(monthlyIncome, size).Round(0),
				Childcare:     calc.ChildcareBenefit(monthlyIncome, size),
				Points:        calc.GeneratePoints(size, decimal.NewFromFloat(maxIncome), decimal.NewFromFloat(step)),
				Warning:       calc.NearbyCliff(monthlyIncome, size),
			}

			formatter := &output.BenefitsFormatter{}
			fmt.Print(formatter.Format(report))
		},
	}

	cmd.Flags().IntVar(&size, "size", 3, "household size (1-8)")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly gross income in dollars")
	cmd.Flags().Float64Var(&maxIncome, "max", 6000, "upper bound of the charted income range")
	cmd.Flags().Float64Var(&step, "step", 100, "income step between chart points")

	return cmd
}
