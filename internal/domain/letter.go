package domain

// RightKind enumerates the data-subject request kinds defined by the
// Indiana Consumer Data Protection Act (IC 24-15).
type RightKind string

const (
	RightAccess      RightKind = "access"
	RightDelete      RightKind = "delete"
	RightCorrect     RightKind = "correct"
	RightPortability RightKind = "portability"
	RightOptOut      RightKind = "opt-out"
)

// DataCategory identifies a category of personal data a request can
// cover.
type DataCategory struct {
	ID    string
	Label string
}

// LetterForm carries the user-entered fields for one request letter. It
// exists in memory for the duration of a single command and is never
// written back out or transmitted anywhere.
type LetterForm struct {
	YourName         string    `yaml:"your_name"`
	YourAddress      string    `yaml:"your_address"`
	YourEmail        string    `yaml:"your_email"`
	CompanyName      string    `yaml:"company_name"`
	CompanyAddress   string    `yaml:"company_address"`
	Right            RightKind `yaml:"right"`
	DataCategories   []string  `yaml:"data_categories"`
	AccountReference string    `yaml:"account_reference"`
}
