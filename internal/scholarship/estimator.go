package scholarship

import (
	"sort"
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
	"github.com/shopspring/decimal"
)

// Indiana Choice Scholarship estimates. HEA 1001-2025 schedules the
// income-limit removal beginning June 29, 2026; awards run at
// approximately 90% of the district's per-pupil public funding amount.

var awardPct = decimal.NewFromFloat(0.9)

// AwardRange is the statewide award range shown for context next to any
// single-district estimate.
type AwardRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// StatewideAwardRange returns the published statewide award range.
func StatewideAwardRange() AwardRange {
	return AwardRange{
		Min: decimal.NewFromInt(6100),
		Max: decimal.NewFromInt(7400),
	}
}

// TierAmount returns the approximate 2026-27 per-pupil funding amount
// for a tier. Display context only; estimates use each corporation's
// own per-pupil value.
func TierAmount(tier domain.FundingTier) decimal.Decimal {
	switch tier {
	case domain.TierHigh:
		return decimal.NewFromInt(8200)
	case domain.TierMidHigh:
		return decimal.NewFromInt(7800)
	case domain.TierMid:
		return decimal.NewFromInt(7400)
	default:
		return decimal.NewFromInt(6800)
	}
}

// Estimate returns the approximate Choice Scholarship award for a
// district's per-pupil funding amount: 90% rounded to whole dollars.
func Estimate(perPupil decimal.Decimal) decimal.Decimal {
	return perPupil.Mul(awardPct).Round(0)
}

// CountyCorporations returns the school corporations for a county in
// catalog order. Unknown counties yield an empty list, not an error.
// Lookup is case-insensitive on the county name.
func CountyCorporations(county string) []domain.SchoolCorporation {
	if c, ok := counties[county]; ok {
		return c.Corporations
	}
	for name, c := range counties {
		if strings.EqualFold(name, county) {
			return c.Corporations
		}
	}
	return nil
}

// CountyNames returns every county name in alphabetical order.
func CountyNames() []string {
	names := make([]string, 0, len(counties))
	for name := range counties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
