package catalog

import (
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
)

// FilterAll is the wildcard value accepted by Filter for the status and
// category predicates.
const FilterAll = "All"

// Catalog is the read-only SNAP item reference list. Loaded once and
// never mutated, so it is safe for concurrent readers.
type Catalog struct {
	items []domain.SNAPItem
}

// NewCatalog returns the catalog backed by the built-in seed data.
func NewCatalog() *Catalog {
	return &Catalog{items: seedItems}
}

// Items returns the full catalog in insertion order.
func (c *Catalog) Items() []domain.SNAPItem {
	return c.items
}

// Categories returns the category filter values in display order,
// starting with the All wildcard.
func (c *Catalog) Categories() []string {
	return []string{
		FilterAll,
		string(domain.CategoryBeverages),
		string(domain.CategorySnacks),
		string(domain.CategoryCandy),
		string(domain.CategoryDairy),
		string(domain.CategoryFrozen),
		string(domain.CategorySupplements),
		string(domain.CategoryStaples),
		string(domain.CategoryBaby),
	}
}

// Statuses returns the status filter values in display order, starting
// with the All wildcard.
func (c *Catalog) Statuses() []string {
	return []string{
		FilterAll,
		string(domain.StatusEligible),
		string(domain.StatusNotEligible),
		string(domain.StatusCheckLabel),
	}
}

// Filter returns the items matching all three predicates: a
// case-insensitive substring match on the item name, an exact status
// match, and an exact category match. FilterAll disables the status or
// category predicate. Catalog order is preserved; there is no ranking.
func (c *Catalog) Filter(query, status, category string) []domain.SNAPItem {
	q := strings.ToLower(query)

	var matched []domain.SNAPItem
	for _, item := range c.items {
		if !strings.Contains(strings.ToLower(item.Name), q) {
			continue
		}
		if status != FilterAll && string(item.Status) != status {
			continue
		}
		if category != FilterAll && string(item.Category) != category {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// Counts reports how many items are eligible and not eligible across
// the whole catalog. Check-label items count toward neither total.
func (c *Catalog) Counts() (eligible, notEligible int) {
	for _, item := range c.items {
		switch item.Status {
		case domain.StatusEligible:
			eligible++
		case domain.StatusNotEligible:
			notEligible++
		}
	}
	return eligible, notEligible
}
