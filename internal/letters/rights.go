package letters

import (
	"github.com/mwcivic/civictools/internal/domain"
)

// Right pairs a request kind with its display label and description.
type Right struct {
	Kind        domain.RightKind
	Label       string
	Description string
}

// Consumer rights under the Indiana Consumer Data Protection Act
// (IC 24-15), effective 2026, enforced by the Indiana Attorney General.
var rights = []Right{
	{
		Kind:  domain.RightAccess,
		Label: "Right to Access",
		Description: "Request a copy of the personal data a company has collected about you, " +
			"including categories, specific pieces, and how it is used.",
	},
	{
		Kind:  domain.RightDelete,
		Label: "Right to Delete",
		Description: "Request that a company delete all personal data they have collected about you, " +
			"subject to certain legal exceptions.",
	},
	{
		Kind:        domain.RightCorrect,
		Label:       "Right to Correct",
		Description: "Request that a company correct inaccurate personal data they hold about you.",
	},
	{
		Kind:  domain.RightPortability,
		Label: "Right to Data Portability",
		Description: "Request a copy of your personal data in a portable, machine-readable format " +
			"so you can transfer it to another service.",
	},
	{
		Kind:  domain.RightOptOut,
		Label: "Right to Opt-Out",
		Description: "Direct a company to stop selling, sharing, or using your personal data for " +
			"targeted advertising or profiling.",
	},
}

var dataCategories = []domain.DataCategory{
	{ID: "purchase_history", Label: "Purchase History"},
	{ID: "browsing_data", Label: "Browsing Data"},
	{ID: "location_data", Label: "Location Data"},
	{ID: "email_contact", Label: "Email / Contact Info"},
	{ID: "social_demographic", Label: "Social / Demographic Data"},
	{ID: "biometric", Label: "Biometric Data"},
	{ID: "financial", Label: "Financial Information"},
	{ID: "health", Label: "Health / Medical Data"},
	{ID: "other", Label: "Other (describe in reference field)"},
}

// Rights returns the rights catalog in display order.
func Rights() []Right {
	return rights
}

// KnownKind reports whether kind is one of the five defined request
// kinds.
func KnownKind(kind domain.RightKind) bool {
	for _, r := range rights {
		if r.Kind == kind {
			return true
		}
	}
	return false
}

// DataCategories returns the selectable data categories in display
// order.
func DataCategories() []domain.DataCategory {
	return dataCategories
}

// KnownCategory reports whether id is one of the defined data category
// identifiers.
func KnownCategory(id string) bool {
	for _, c := range dataCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryLabel resolves a category identifier to its display label,
// falling back to the raw identifier for anything unrecognized.
func CategoryLabel(id string) string {
	for _, c := range dataCategories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}
