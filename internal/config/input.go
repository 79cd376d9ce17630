package config

import (
	"fmt"
	"os"

	"github.com/mwcivic/civictools/internal/domain"
	"github.com/mwcivic/civictools/internal/letters"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of letter request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a letter request from a YAML file. The parsed form
// stays in memory for the lifetime of the command; it is never written
// back out anywhere.
func (ip *InputParser) LoadFromFile(filename string) (*domain.LetterForm, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var form domain.LetterForm
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateForm(&form); err != nil {
		return nil, fmt.Errorf("letter request validation failed: %w", err)
	}

	return &form, nil
}

// ValidateForm checks the enumerated fields of a letter form. Blank
// name/address/email/company fields are allowed; they render as
// bracketed placeholders. An unset right defaults to delete, matching
// the form's default selection.
func (ip *InputParser) ValidateForm(form *domain.LetterForm) error {
	if form.Right == "" {
		form.Right = domain.RightDelete
	}
	if !letters.KnownKind(form.Right) {
		return fmt.Errorf("unknown right kind %q (expected access, delete, correct, portability, or opt-out)", form.Right)
	}

	for _, id := range form.DataCategories {
		if !letters.KnownCategory(id) {
			return fmt.Errorf("unknown data category %q", id)
		}
	}

	return nil
}

// MissingRequiredFields lists the required fields that are still blank.
// Callers use this to warn that the letter will contain placeholder
// tokens.
func (ip *InputParser) MissingRequiredFields(form *domain.LetterForm) []string {
	var missing []string
	if form.YourName == "" {
		missing = append(missing, "your_name")
	}
	if form.YourAddress == "" {
		missing = append(missing, "your_address")
	}
	if form.YourEmail == "" {
		missing = append(missing, "your_email")
	}
	if form.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	return missing
}
