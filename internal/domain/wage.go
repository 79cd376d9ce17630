package domain

import (
	"github.com/shopspring/decimal"
)

// WagePoint is one year's minimum wage entry for a state. Date is the
// display form of the effective date; Note flags whether the value is
// confirmed or an estimate.
type WagePoint struct {
	Year     int
	Date     string
	Standard decimal.Decimal
	Tipped   decimal.Decimal
	Note     string
}

// WageSchedule is a state's year-by-year minimum wage schedule. Years
// within one schedule are unique. Color is the display color used when
// charting the schedule.
type WageSchedule struct {
	State  string
	Color  string
	Points []WagePoint
}

// WageRate is the rate resolved as effective for a given year.
type WageRate struct {
	Standard decimal.Decimal
	Tipped   decimal.Decimal
	Year     int
}
