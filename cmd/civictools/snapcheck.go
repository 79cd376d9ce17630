package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mwcivic/civictools/internal/catalog"
	"github.com/mwcivic/civictools/internal/output"
	"github.com/mwcivic/civictools/internal/tui"
)

func newSNAPCheckCmd() *cobra.Command {
	var (
		status      string
		category    string
		interactive bool
		showNotes   bool
	)

	cmd := &cobra.Command{
		Use:   "snapcheck [query]",
		Short: "Check item SNAP eligibility under Indiana's 2026 waiver",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.NewCatalog()

			if interactive {
				program := tea.NewProgram(tui.NewBrowser(cat))
				_, err := program.Run()
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			items := cat.Filter(query, status, category)
			eligible, notEligible := cat.Counts()

			formatter := &output.CatalogFormatter{ShowNotes: showNotes}
			fmt.Print(formatter.Format(items, len(cat.Items()), eligible, notEligible))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", catalog.FilterAll, "filter by status (eligible, not-eligible, check-label)")
	cmd.Flags().StringVar(&category, "category", catalog.FilterAll, "filter by category (Beverages, Snacks, Candy, ...)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the catalog interactively")
	cmd.Flags().BoolVar(&showNotes, "notes", false, "include long-form notes in the listing")

	return cmd
}
