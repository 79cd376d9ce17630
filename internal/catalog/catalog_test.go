package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwcivic/civictools/internal/domain"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	cat := NewCatalog()

	seen := make(map[int]string)
	for _, item := range cat.Items() {
		if prior, ok := seen[item.ID]; ok {
			t.Fatalf("duplicate ID %d shared by %q and %q", item.ID, prior, item.Name)
		}
		seen[item.ID] = item.Name
	}
}

func TestFilterByQuery(t *testing.T) {
	cat := NewCatalog()

	results := cat.Filter("bar", FilterAll, FilterAll)
	require.NotEmpty(t, results)

	for _, item := range results {
		assert.Contains(t, strings.ToLower(item.Name), "bar")
	}

	// Catalog insertion order is preserved: granola bars (snacks) come
	// before chocolate bars (candy).
	assert.Equal(t, "Granola bars", results[0].Name)
	for i := 1; i < len(results); i++ {
		assert.Greater(t, results[i].ID, results[i-1].ID, "results out of catalog order")
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	cat := NewCatalog()

	lower := cat.Filter("gatorade", FilterAll, FilterAll)
	upper := cat.Filter("GATORADE", FilterAll, FilterAll)

	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)
}

func TestFilterCombinesPredicates(t *testing.T) {
	cat := NewCatalog()

	tests := []struct {
		name     string
		query    string
		status   string
		category string
		check    func(t *testing.T, results []domain.SNAPItem)
	}{
		{
			name:     "Empty query matches everything",
			query:    "",
			status:   FilterAll,
			category: FilterAll,
			check: func(t *testing.T, results []domain.SNAPItem) {
				assert.Len(t, results, len(cat.Items()))
			},
		},
		{
			name:     "Status only",
			query:    "",
			status:   string(domain.StatusCheckLabel),
			category: FilterAll,
			check: func(t *testing.T, results []domain.SNAPItem) {
				require.NotEmpty(t, results)
				for _, item := range results {
					assert.Equal(t, domain.StatusCheckLabel, item.Status)
				}
			},
		},
		{
			name:     "Category only",
			query:    "",
			status:   FilterAll,
			category: string(domain.CategoryDairy),
			check: func(t *testing.T, results []domain.SNAPItem) {
				require.NotEmpty(t, results)
				for _, item := range results {
					assert.Equal(t, domain.CategoryDairy, item.Category)
				}
			},
		},
		{
			name:     "All three predicates ANDed",
			query:    "milk",
			status:   string(domain.StatusEligible),
			category: string(domain.CategoryDairy),
			check: func(t *testing.T, results []domain.SNAPItem) {
				require.NotEmpty(t, results)
				for _, item := range results {
					assert.Contains(t, strings.ToLower(item.Name), "milk")
					assert.Equal(t, domain.StatusEligible, item.Status)
					assert.Equal(t, domain.CategoryDairy, item.Category)
				}
			},
		},
		{
			name:     "No match yields empty result",
			query:    "zzzz",
			status:   FilterAll,
			category: FilterAll,
			check: func(t *testing.T, results []domain.SNAPItem) {
				assert.Empty(t, results)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, cat.Filter(tt.query, tt.status, tt.category))
		})
	}
}

func TestCounts(t *testing.T) {
	cat := NewCatalog()

	eligible, notEligible := cat.Counts()
	assert.Equal(t, 27, eligible)
	assert.Equal(t, 13, notEligible)

	checkLabel := len(cat.Filter("", string(domain.StatusCheckLabel), FilterAll))
	assert.Equal(t, len(cat.Items()), eligible+notEligible+checkLabel,
		"every item should have one of the three statuses")
}

func TestFilterValueLists(t *testing.T) {
	cat := NewCatalog()

	assert.Equal(t, FilterAll, cat.Statuses()[0])
	assert.Equal(t, FilterAll, cat.Categories()[0])
	assert.Len(t, cat.Statuses(), 4)
	assert.Len(t, cat.Categories(), 9)
}
