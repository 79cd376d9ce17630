package letters

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwcivic/civictools/internal/domain"
)

// Placeholder tokens substituted for blank required fields so a letter
// can be previewed before the form is complete.
const (
	PlaceholderName    = "[Your Name]"
	PlaceholderAddress = "[Your Address]"
	PlaceholderEmail   = "[Your Email]"
	PlaceholderCompany = "[Company Name]"
)

// Params carries everything one letter needs. Date is injected by the
// caller; rendering never reads the clock, so identical Params always
// produce byte-identical output.
type Params struct {
	Date             time.Time
	YourName         string
	YourAddress      string
	YourEmail        string
	CompanyName      string
	CompanyAddress   string
	CategoriesBlock  string
	AccountReference string
}

// NewParams builds render parameters from a form, substituting
// bracketed placeholders for blank required fields and expanding the
// selected data category IDs into a bulleted list.
func NewParams(form domain.LetterForm, date time.Time) Params {
	return Params{
		Date:             date,
		YourName:         orPlaceholder(form.YourName, PlaceholderName),
		YourAddress:      orPlaceholder(form.YourAddress, PlaceholderAddress),
		YourEmail:        orPlaceholder(form.YourEmail, PlaceholderEmail),
		CompanyName:      orPlaceholder(form.CompanyName, PlaceholderCompany),
		CompanyAddress:   form.CompanyAddress,
		CategoriesBlock:  CategoriesBlock(form.DataCategories),
		AccountReference: form.AccountReference,
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// CategoriesBlock renders selected category identifiers as a bulleted
// list, defaulting to a catch-all line when nothing was selected.
func CategoriesBlock(ids []string) string {
	if len(ids) == 0 {
		return "- All personal data held about me"
	}
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = "- " + CategoryLabel(id)
	}
	return strings.Join(lines, "\n")
}

// Render generates the plain-text request letter for the given right
// kind. Pure function: no I/O, no errors, deterministic for identical
// inputs.
func Render(kind domain.RightKind, p Params) string {
	var body string
	switch kind {
	case domain.RightDelete:
		body = deleteBody(p)
	case domain.RightCorrect:
		body = correctBody(p)
	case domain.RightPortability:
		body = portabilityBody(p)
	case domain.RightOptOut:
		body = optOutBody(p)
	default:
		// Access is the broadest request and the safe reading of an
		// unrecognized kind.
		body = accessBody(p)
	}
	return header(p) + "\n\n" + body + "\n\n" + footer(p)
}

// header renders the shared date / requester / company block. The
// company address and Re: lines only appear when their fields are set.
func header(p Params) string {
	var b strings.Builder
	b.WriteString(p.Date.Format("January 2, 2006"))
	b.WriteString("\n\n")
	b.WriteString(p.YourName)
	b.WriteString("\n")
	b.WriteString(p.YourAddress)
	b.WriteString("\nEmail: ")
	b.WriteString(p.YourEmail)
	b.WriteString("\n\n")
	b.WriteString(p.CompanyName)
	if p.CompanyAddress != "" {
		b.WriteString("\n")
		b.WriteString(p.CompanyAddress)
	}
	b.WriteString("\n")
	if p.AccountReference != "" {
		b.WriteString("\nRe: Account / Reference: ")
		b.WriteString(p.AccountReference)
	}
	return b.String()
}

// footer renders the shared statutory deadline and escalation block.
func footer(p Params) string {
	return fmt.Sprintf(`If you have any questions or need clarification, please contact me at %s.

Please be advised that under IC 24-15, you are required to respond to this request within 45 days of receipt. A single 45-day extension is permitted with written notice.

Failure to comply may result in a complaint filed with the Indiana Attorney General's Office, which enforces the Indiana Consumer Data Protection Act.

Sincerely,

%s`, p.YourEmail, p.YourName)
}

func accessBody(p Params) string {
	return fmt.Sprintf(`Subject: Indiana Consumer Data Protection Act — Right to Access Request (IC 24-15)

Dear Privacy Officer or Data Controller at %s,

Pursuant to the Indiana Consumer Data Protection Act (IC 24-15), which became effective in 2026, I am exercising my Right to Access as an Indiana resident.

I hereby request that %s provide me with:

1. Confirmation of whether you are processing my personal data;
2. A complete list of the categories of personal data you have collected about me;
3. Specific pieces of personal data you hold about me;
4. The purposes for which my personal data is being processed;
5. The categories of third parties with whom my personal data has been shared;
6. The source of my personal data if not collected directly from me.

I am specifically requesting information about the following types of data:
%s

This request covers all personal data collected, processed, or stored by %s and any processors acting on your behalf.`,
		p.CompanyName, p.CompanyName, p.CategoriesBlock, p.CompanyName)
}

func deleteBody(p Params) string {
	return fmt.Sprintf(`Subject: Indiana Consumer Data Protection Act — Right to Delete Request (IC 24-15)

Dear Privacy Officer or Data Controller at %s,

Pursuant to the Indiana Consumer Data Protection Act (IC 24-15), which became effective in 2026, I am exercising my Right to Delete as an Indiana resident.

I hereby request that %s promptly delete all personal data that you have collected about me, including but not limited to:

%s

This deletion request covers:
- All personal data held in your primary systems;
- All backups or archived copies, to the extent technically feasible;
- All personal data shared with third-party processors acting on your behalf.

I understand that certain legal exceptions may apply (e.g., data required to complete a transaction, legal compliance obligations). If any data cannot be deleted, please specify the legal basis for retaining it.

After completing the deletion, please provide written confirmation that my data has been deleted and identify any data that could not be deleted along with the reason.`,
		p.CompanyName, p.CompanyName, p.CategoriesBlock)
}

func correctBody(p Params) string {
	return fmt.Sprintf(`Subject: Indiana Consumer Data Protection Act — Right to Correct Request (IC 24-15)

Dear Privacy Officer or Data Controller at %s,

Pursuant to the Indiana Consumer Data Protection Act (IC 24-15), which became effective in 2026, I am exercising my Right to Correct inaccurate personal data as an Indiana resident.

I believe that %s holds inaccurate personal data about me. I am requesting that you investigate and correct the following:

Categories of data I believe may be inaccurate:
%s

Please take the following steps:
1. Review all personal data you hold about me in the categories listed above;
2. Correct any inaccuracies you identify;
3. Notify any third parties to whom you have disclosed this data of the corrections made, to the extent required by law.

Please provide written confirmation of the corrections made once the process is complete.`,
		p.CompanyName, p.CompanyName, p.CategoriesBlock)
}

func portabilityBody(p Params) string {
	return fmt.Sprintf(`Subject: Indiana Consumer Data Protection Act — Right to Data Portability Request (IC 24-15)

Dear Privacy Officer or Data Controller at %s,

Pursuant to the Indiana Consumer Data Protection Act (IC 24-15), which became effective in 2026, I am exercising my Right to Data Portability as an Indiana resident.

I hereby request a copy of all personal data you hold about me in a portable, machine-readable format (such as CSV or JSON). Specifically, I am requesting data in the following categories:

%s

Please provide this data in a structured, commonly used, and machine-readable format that allows me to transmit it to another controller.

This request includes all personal data you have collected about me and that you have processed based on my consent or pursuant to a contract with me.`,
		p.CompanyName, p.CategoriesBlock)
}

func optOutBody(p Params) string {
	return fmt.Sprintf(`Subject: Indiana Consumer Data Protection Act — Opt-Out of Data Sale / Targeted Advertising (IC 24-15)

Dear Privacy Officer or Data Controller at %s,

Pursuant to the Indiana Consumer Data Protection Act (IC 24-15), which became effective in 2026, I am exercising my Right to Opt-Out as an Indiana resident.

I hereby direct %s to immediately cease:

1. The sale of my personal data to any third parties;
2. The use of my personal data for targeted advertising;
3. The use of my personal data for profiling that produces legal or similarly significant effects on me.

This opt-out covers all personal data you hold about me, including but not limited to:
%s

Please confirm in writing that you have honored this opt-out request and have notified all third parties with whom my data has been shared for the above purposes to honor this request as well.`,
		p.CompanyName, p.CompanyName, p.CategoriesBlock)
}
