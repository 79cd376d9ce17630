package minwage

import (
	"sort"
	"strings"

	"github.com/mwcivic/civictools/internal/domain"
)

// Schedules returns the published wage schedules in display order.
func Schedules() []domain.WageSchedule {
	return schedules
}

// ScheduleByName finds a schedule by state name, case-insensitively.
func ScheduleByName(state string) (domain.WageSchedule, bool) {
	for _, s := range schedules {
		if strings.EqualFold(s.State, state) {
			return s, true
		}
	}
	return domain.WageSchedule{}, false
}

// CurrentRate resolves the rate in effect for asOfYear: the most recent
// point whose year is at or before asOfYear. When asOfYear predates
// every point, the earliest point is returned rather than nothing. The
// caller supplies asOfYear; this package never reads the clock.
func CurrentRate(schedule domain.WageSchedule, asOfYear int) domain.WageRate {
	if len(schedule.Points) == 0 {
		return domain.WageRate{}
	}

	points := make([]domain.WagePoint, len(schedule.Points))
	copy(points, schedule.Points)
	sort.Slice(points, func(i, j int) bool {
		return points[i].Year > points[j].Year
	})

	for _, p := range points {
		if p.Year <= asOfYear {
			return domain.WageRate{Standard: p.Standard, Tipped: p.Tipped, Year: p.Year}
		}
	}

	earliest := points[len(points)-1]
	return domain.WageRate{Standard: earliest.Standard, Tipped: earliest.Tipped, Year: earliest.Year}
}
