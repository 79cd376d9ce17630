package letters

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwcivic/civictools/internal/domain"
)

func testForm() domain.LetterForm {
	return domain.LetterForm{
		YourName:         "Jordan Avery",
		YourAddress:      "410 W Maple St, Fort Wayne, IN 46802",
		YourEmail:        "jordan.avery@example.com",
		CompanyName:      "Hoosier Retail Co.",
		CompanyAddress:   "1 Commerce Way, Indianapolis, IN 46204",
		Right:            domain.RightDelete,
		DataCategories:   []string{"purchase_history", "location_data"},
		AccountReference: "Customer #88213",
	}
}

func testDate() time.Time {
	return time.Date(2026, 2, 12, 9, 30, 0, 0, time.UTC)
}

func TestRenderDeleteLetter(t *testing.T) {
	p := NewParams(testForm(), testDate())
	text := Render(domain.RightDelete, p)

	assert.Contains(t, text, "February 12, 2026")
	assert.Contains(t, text, "Jordan Avery")
	assert.Contains(t, text, "Hoosier Retail Co.")
	assert.Contains(t, text, "Right to Delete")
	assert.Contains(t, text, "- Purchase History")
	assert.Contains(t, text, "- Location Data")
	assert.Contains(t, text, "Re: Account / Reference: Customer #88213")
	assert.Contains(t, text, "within 45 days")
	assert.Contains(t, text, "Indiana Attorney General")
	assert.True(t, strings.HasSuffix(text, "Jordan Avery"), "letter should close with the signature")
}

func TestRenderSubjectLinePerKind(t *testing.T) {
	p := NewParams(testForm(), testDate())

	tests := []struct {
		name    string
		kind    domain.RightKind
		subject string
	}{
		{name: "Access", kind: domain.RightAccess, subject: "Right to Access Request"},
		{name: "Delete", kind: domain.RightDelete, subject: "Right to Delete Request"},
		{name: "Correct", kind: domain.RightCorrect, subject: "Right to Correct Request"},
		{name: "Portability", kind: domain.RightPortability, subject: "Right to Data Portability Request"},
		{name: "Opt-out", kind: domain.RightOptOut, subject: "Opt-Out of Data Sale / Targeted Advertising"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Render(tt.kind, p)
			assert.Contains(t, text, "Subject: Indiana Consumer Data Protection Act")
			assert.Contains(t, text, tt.subject)
			assert.Contains(t, text, "(IC 24-15)")
		})
	}
}

func TestRenderUnknownKindFallsBackToAccess(t *testing.T) {
	p := NewParams(testForm(), testDate())

	unknown := Render(domain.RightKind("erasure"), p)
	access := Render(domain.RightAccess, p)
	assert.Equal(t, access, unknown)
}

func TestRenderIsDeterministic(t *testing.T) {
	p := NewParams(testForm(), testDate())

	first := Render(domain.RightOptOut, p)
	second := Render(domain.RightOptOut, p)
	assert.Equal(t, first, second, "identical params must yield byte-identical letters")
}

func TestRenderBlankFormUsesPlaceholders(t *testing.T) {
	p := NewParams(domain.LetterForm{}, testDate())
	text := Render(domain.RightAccess, p)

	assert.Contains(t, text, PlaceholderName)
	assert.Contains(t, text, PlaceholderAddress)
	assert.Contains(t, text, PlaceholderEmail)
	assert.Contains(t, text, PlaceholderCompany)
	assert.Contains(t, text, "- All personal data held about me")
	assert.Contains(t, text, "within 45 days")
	assert.NotContains(t, text, "Re: Account / Reference:")
}

func TestHeaderOptionalLines(t *testing.T) {
	form := testForm()
	form.CompanyAddress = ""
	form.AccountReference = ""

	text := Render(domain.RightDelete, NewParams(form, testDate()))
	assert.NotContains(t, text, "1 Commerce Way")
	assert.NotContains(t, text, "Re: Account / Reference:")

	full := Render(domain.RightDelete, NewParams(testForm(), testDate()))
	assert.Contains(t, full, "Hoosier Retail Co.\n1 Commerce Way, Indianapolis, IN 46204")
}

func TestCategoriesBlock(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected string
	}{
		{
			name:     "Empty selection defaults to the catch-all line",
			ids:      nil,
			expected: "- All personal data held about me",
		},
		{
			name:     "Known identifiers expand to labels",
			ids:      []string{"biometric", "health"},
			expected: "- Biometric Data\n- Health / Medical Data",
		},
		{
			name:     "Unknown identifier passes through raw",
			ids:      []string{"purchase_history", "loyalty_points"},
			expected: "- Purchase History\n- loyalty_points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoriesBlock(tt.ids))
		})
	}
}

func TestRightsCatalog(t *testing.T) {
	require.Len(t, Rights(), 5)

	for _, r := range Rights() {
		assert.True(t, KnownKind(r.Kind))
		assert.NotEmpty(t, r.Label)
		assert.NotEmpty(t, r.Description)
	}
	assert.False(t, KnownKind(domain.RightKind("erasure")))
}

func TestDataCategoryCatalog(t *testing.T) {
	require.Len(t, DataCategories(), 9)

	for _, c := range DataCategories() {
		assert.True(t, KnownCategory(c.ID))
		assert.Equal(t, c.Label, CategoryLabel(c.ID))
	}
	assert.False(t, KnownCategory("loyalty_points"))
	assert.Equal(t, "loyalty_points", CategoryLabel("loyalty_points"))
}
