package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "civictools",
	Short: "Midwest civic calculators CLI",
	Long: "Informational calculators for Indiana and Midwest residents: benefits cliff\n" +
		"estimates, SNAP item eligibility, minimum wage schedules, Choice Scholarship\n" +
		"award estimates, and data rights request letters.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "civictools %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func main() {
	rootCmd.AddCommand(
		newBenefitsCmd(),
		newSNAPCheckCmd(),
		newMinWageCmd(),
		newScholarshipCmd(),
		newLetterCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
