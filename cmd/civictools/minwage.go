package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwcivic/civictools/internal/minwage"
	"github.com/mwcivic/civictools/internal/output"
)

func newMinWageCmd() *cobra.Command {
	var (
		state string
		year  int
	)

	cmd := &cobra.Command{
		Use:   "minwage",
		Short: "Look up Midwest minimum wage rates by state and year",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The resolver never reads the clock; the default year is
			// supplied here.
			asOf := year
			if asOf == 0 {
				asOf = time.Now().Year()
			}

			formatter := &output.MinWageFormatter{}

			if state != "" {
				schedule, ok := minwage.ScheduleByName(state)
				if !ok {
					return fmt.Errorf("unknown state %q (expected Michigan, Illinois, or Ohio)", state)
				}
				fmt.Print(formatter.Format(schedule, minwage.CurrentRate(schedule, asOf), asOf))
				return nil
			}

			for i, schedule := range minwage.Schedules() {
				if i > 0 {
					fmt.Println()
				}
				fmt.Print(formatter.Format(schedule, minwage.CurrentRate(schedule, asOf), asOf))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "state to look up (default: all)")
	cmd.Flags().IntVar(&year, "year", 0, "year to resolve rates for (default: current year)")

	return cmd
}
