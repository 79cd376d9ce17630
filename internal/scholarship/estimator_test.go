package scholarship

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwcivic/civictools/internal/domain"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		perPupil int64
		expected int64
	}{
		{name: "Mid tier", perPupil: 7400, expected: 6660},
		{name: "Rural tier", perPupil: 6800, expected: 6120},
		{name: "High tier", perPupil: 8200, expected: 7380},
		{name: "Mid-high tier", perPupil: 7800, expected: 7020},
		{name: "Zero per-pupil", perPupil: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Estimate(decimal.NewFromInt(tt.perPupil))
			assert.True(t, result.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, result)
		})
	}
}

func TestEstimateRoundsToWholeDollars(t *testing.T) {
	// 7405 * 0.9 = 6664.5, rounds to 6665 (round half away from zero).
	result := Estimate(decimal.NewFromInt(7405))
	assert.True(t, result.Equal(decimal.NewFromInt(6665)), "got %s", result)
	assert.True(t, result.Exponent() >= 0, "award should carry no cents")
}

func TestCountyCorporations(t *testing.T) {
	corps := CountyCorporations("Hamilton")
	require.Len(t, corps, 5)
	assert.Equal(t, "Carmel Clay Schools", corps[0].Name)
}

func TestCountyCorporationsCaseInsensitive(t *testing.T) {
	exact := CountyCorporations("Marion")
	folded := CountyCorporations("mArIoN")
	require.NotEmpty(t, exact)
	assert.Equal(t, exact, folded)
}

func TestCountyCorporationsUnknownCounty(t *testing.T) {
	assert.Nil(t, CountyCorporations("Cook"))
	assert.Nil(t, CountyCorporations(""))
}

func TestCountyNames(t *testing.T) {
	names := CountyNames()
	require.Len(t, names, 92, "Indiana has 92 counties")
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "St. Joseph")
	assert.Contains(t, names, "Vanderburgh")
}

func TestEveryCorporationHasFundingData(t *testing.T) {
	for _, name := range CountyNames() {
		corps := CountyCorporations(name)
		require.NotEmpty(t, corps, "county %s has no corporations", name)
		for _, c := range corps {
			assert.True(t, c.PerPupil.GreaterThan(decimal.Zero),
				"%s / %s has non-positive per-pupil funding", name, c.Name)
		}
	}
}

func TestTierAmount(t *testing.T) {
	tests := []struct {
		name     string
		tier     domain.FundingTier
		expected int64
	}{
		{name: "High", tier: domain.TierHigh, expected: 8200},
		{name: "Mid-high", tier: domain.TierMidHigh, expected: 7800},
		{name: "Mid", tier: domain.TierMid, expected: 7400},
		{name: "Rural", tier: domain.TierRural, expected: 6800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, TierAmount(tt.tier).Equal(decimal.NewFromInt(tt.expected)))
		})
	}
}

func TestStatewideAwardRange(t *testing.T) {
	r := StatewideAwardRange()
	assert.True(t, r.Min.Equal(decimal.NewFromInt(6100)))
	assert.True(t, r.Max.Equal(decimal.NewFromInt(7400)))
	assert.True(t, r.Min.LessThan(r.Max))
}
