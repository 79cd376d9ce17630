package minwage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwcivic/civictools/internal/domain"
)

func testSchedule() domain.WageSchedule {
	return domain.WageSchedule{
		State: "Testland",
		Points: []domain.WagePoint{
			{Year: 2023, Standard: decimal.NewFromFloat(10.00), Tipped: decimal.NewFromFloat(5.00)},
			{Year: 2024, Standard: decimal.NewFromFloat(11.00), Tipped: decimal.NewFromFloat(5.50)},
			{Year: 2026, Standard: decimal.NewFromFloat(12.00), Tipped: decimal.NewFromFloat(6.00)},
		},
	}
}

func TestCurrentRate(t *testing.T) {
	schedule := testSchedule()

	tests := []struct {
		name         string
		asOfYear     int
		expectedYear int
	}{
		{name: "Gap year resolves to most recent prior point", asOfYear: 2025, expectedYear: 2024},
		{name: "Exact year", asOfYear: 2024, expectedYear: 2024},
		{name: "After all points uses the latest", asOfYear: 2030, expectedYear: 2026},
		{name: "Before all points falls back to the earliest", asOfYear: 2020, expectedYear: 2023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := CurrentRate(schedule, tt.asOfYear)
			assert.Equal(t, tt.expectedYear, rate.Year)
		})
	}
}

func TestCurrentRateDoesNotReorderInput(t *testing.T) {
	schedule := testSchedule()
	CurrentRate(schedule, 2025)

	assert.Equal(t, 2023, schedule.Points[0].Year, "resolver must not mutate the schedule")
}

func TestCurrentRateEmptySchedule(t *testing.T) {
	rate := CurrentRate(domain.WageSchedule{State: "Empty"}, 2026)
	assert.Zero(t, rate.Year)
	assert.True(t, rate.Standard.IsZero())
}

func TestScheduleByName(t *testing.T) {
	tests := []struct {
		name  string
		state string
		found bool
	}{
		{name: "Exact name", state: "Michigan", found: true},
		{name: "Case-insensitive", state: "ILLINOIS", found: true},
		{name: "Unknown state", state: "Kentucky", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := ScheduleByName(tt.state)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestPublishedScheduleValues(t *testing.T) {
	michigan, found := ScheduleByName("Michigan")
	require.True(t, found)

	rate := CurrentRate(michigan, 2026)
	assert.Equal(t, 2026, rate.Year)
	assert.True(t, rate.Standard.Equal(decimal.NewFromFloat(13.73)), "got %s", rate.Standard)
	assert.True(t, rate.Tipped.Equal(decimal.NewFromFloat(5.49)), "got %s", rate.Tipped)

	for _, schedule := range Schedules() {
		years := make(map[int]bool)
		for _, p := range schedule.Points {
			assert.False(t, years[p.Year], "%s has duplicate year %d", schedule.State, p.Year)
			years[p.Year] = true
		}
	}
}
