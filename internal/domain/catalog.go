package domain

// SNAPCategory is the food category a catalog item belongs to.
type SNAPCategory string

const (
	CategoryBeverages   SNAPCategory = "Beverages"
	CategorySnacks      SNAPCategory = "Snacks"
	CategoryCandy       SNAPCategory = "Candy"
	CategoryDairy       SNAPCategory = "Dairy"
	CategoryFrozen      SNAPCategory = "Frozen"
	CategorySupplements SNAPCategory = "Supplements"
	CategoryStaples     SNAPCategory = "Staples"
	CategoryBaby        SNAPCategory = "Baby"
)

// SNAPStatus is the eligibility determination for a catalog item under
// Indiana's 2026 SNAP waiver.
type SNAPStatus string

const (
	StatusEligible    SNAPStatus = "eligible"
	StatusNotEligible SNAPStatus = "not-eligible"
	StatusCheckLabel  SNAPStatus = "check-label"
)

// SNAPItem is one entry in the static item reference catalog. IDs are
// unique and stable; Notes is optional long-form guidance.
type SNAPItem struct {
	ID       int
	Name     string
	Category SNAPCategory
	Status   SNAPStatus
	Reason   string
	Notes    string
}
