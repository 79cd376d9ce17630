package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwcivic/civictools/internal/output"
	"github.com/mwcivic/civictools/internal/scholarship"
)

func newScholarshipCmd() *cobra.Command {
	var (
		county string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "scholarship",
		Short: "Estimate Indiana Choice Scholarship awards by county",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range scholarship.CountyNames() {
					fmt.Println(name)
				}
				return nil
			}

			if county == "" {
				return fmt.Errorf("--county is required (or use --list to see county names)")
			}

			corps := scholarship.CountyCorporations(county)
			awards := make([]output.CorporationAward, len(corps))
			for i, c := range corps {
				awards[i] = output.CorporationAward{
					Corporation: c,
					Award:       scholarship.Estimate(c.PerPupil),
				}
			}

			r := scholarship.StatewideAwardRange()
			formatter := &output.ScholarshipFormatter{}
			fmt.Print(formatter.Format(county, awards, r.Min, r.Max))
			return nil
		},
	}

	cmd.Flags().StringVar(&county, "county", "", "Indiana county name")
	cmd.Flags().BoolVar(&list, "list", false, "list all county names")

	return cmd
}
