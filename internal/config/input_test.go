package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwcivic/civictools/internal/domain"
)

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeRequestFile(t, `
your_name: "Jordan Avery"
your_address: "410 W Maple St, Fort Wayne, IN 46802"
your_email: "jordan.avery@example.com"
company_name: "Hoosier Retail Co."
company_address: "1 Commerce Way, Indianapolis, IN 46204"
right: "access"
data_categories:
  - purchase_history
  - location_data
account_reference: "Customer #88213"
`)

	parser := NewInputParser()
	form, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jordan Avery", form.YourName)
	assert.Equal(t, "Hoosier Retail Co.", form.CompanyName)
	assert.Equal(t, domain.RightAccess, form.Right)
	assert.Equal(t, []string{"purchase_history", "location_data"}, form.DataCategories)
	assert.Equal(t, "Customer #88213", form.AccountReference)
	assert.Empty(t, parser.MissingRequiredFields(form))
}

func TestLoadFromFileErrors(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "Unknown right kind",
			content:     "right: \"erasure\"\n",
			errContains: "unknown right kind",
		},
		{
			name:        "Unknown data category",
			content:     "right: \"delete\"\ndata_categories:\n  - loyalty_points\n",
			errContains: "unknown data category",
		},
		{
			name:        "Malformed YAML",
			content:     "your_name: [unclosed\n",
			errContains: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.LoadFromFile(writeRequestFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadFromFileMissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestValidateFormDefaultsRightToDelete(t *testing.T) {
	parser := NewInputParser()
	form := &domain.LetterForm{YourName: "Jordan Avery"}

	require.NoError(t, parser.ValidateForm(form))
	assert.Equal(t, domain.RightDelete, form.Right)
}

func TestMissingRequiredFields(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name     string
		form     domain.LetterForm
		expected []string
	}{
		{
			name:     "Everything blank",
			form:     domain.LetterForm{},
			expected: []string{"your_name", "your_address", "your_email", "company_name"},
		},
		{
			name: "Partially filled",
			form: domain.LetterForm{
				YourName:    "Jordan Avery",
				CompanyName: "Hoosier Retail Co.",
			},
			expected: []string{"your_address", "your_email"},
		},
		{
			name: "Optional fields never count",
			form: domain.LetterForm{
				YourName:    "Jordan Avery",
				YourAddress: "410 W Maple St",
				YourEmail:   "jordan.avery@example.com",
				CompanyName: "Hoosier Retail Co.",
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.MissingRequiredFields(&tt.form))
		})
	}
}
