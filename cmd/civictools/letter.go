package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mwcivic/civictools/internal/config"
	"github.com/mwcivic/civictools/internal/letters"
)

func newLetterCmd() *cobra.Command {
	var (
		outFile     string
		copyToClip  bool
	)

	cmd := &cobra.Command{
		Use:   "letter [request-file]",
		Short: "Generate a data rights request letter under IC 24-15",
		Long: "Generate a plain-text Indiana Consumer Data Protection Act request letter\n" +
			"from a YAML request file. The request is read into memory, rendered, and\n" +
			"discarded; nothing from it is stored or transmitted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			form, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			if missing := parser.MissingRequiredFields(form); len(missing) > 0 {
				log.Printf("WARN: blank fields %s; the letter will contain bracketed placeholders",
					strings.Join(missing, ", "))
			}

			// The render core takes the date as input; the clock is read
			// only here.
			params := letters.NewParams(*form, time.Now())
			text := letters.Render(form.Right, params)

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(text), 0o644); err != nil {
					return fmt.Errorf("failed to write letter: %w", err)
				}
				fmt.Printf("Letter written to %s\n", outFile)
			} else {
				fmt.Println(text)
			}

			if copyToClip {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("failed to copy letter to clipboard: %w", err)
				}
				fmt.Println("Letter copied to clipboard.")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the letter to a file instead of stdout")
	cmd.Flags().BoolVar(&copyToClip, "copy", false, "copy the letter to the clipboard")

	return cmd
}
