package minwage

import (
	"github.com/mwcivic/civictools/internal/domain"
	"github.com/shopspring/decimal"
)

// Midwest minimum wage schedules, 2023-2031.
// Sources: Michigan LEO, Illinois DOL, Ohio BWC.
// Values after confirmed agency announcements are estimates. Michigan
// tip-credit percentages after 2026 follow FAQ guidance and use
// projected CPI-adjusted standard rates. Illinois values after 2026
// assume no new statutory change. Ohio values adjust annually per CPI
// each January.
var schedules = []domain.WageSchedule{
	{
		State: "Michigan",
		Color: "#1a56db",
		Points: []domain.WagePoint{
			{Year: 2023, Date: "Jan 2023", Standard: decimal.NewFromFloat(10.10), Tipped: decimal.NewFromFloat(3.84),
				Note: "Tipped wage is ~38% of standard"},
			{Year: 2024, Date: "Jan 2024", Standard: decimal.NewFromFloat(10.33), Tipped: decimal.NewFromFloat(3.93),
				Note: "Annual CPI adjustment"},
			{Year: 2025, Date: "Jan 2025", Standard: decimal.NewFromFloat(12.48), Tipped: decimal.NewFromFloat(4.74),
				Note: "Improved Workforce Opportunity Wage Act increase"},
			{Year: 2026, Date: "Jan 2026", Standard: decimal.NewFromFloat(13.73), Tipped: decimal.NewFromFloat(5.49),
				Note: "Confirmed by Michigan LEO release (Dec 2025)"},
			{Year: 2027, Date: "Jan 2027", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(6.15),
				Note: "Confirmed standard wage; tipped uses 41% schedule"},
			{Year: 2028, Date: "Jan 2028", Standard: decimal.NewFromFloat(15.30), Tipped: decimal.NewFromFloat(6.43),
				Note: "Estimated CPI adjustment with 42% tipped schedule"},
			{Year: 2029, Date: "Jan 2029", Standard: decimal.NewFromFloat(15.60), Tipped: decimal.NewFromFloat(6.71),
				Note: "Estimated CPI adjustment with 43% tipped schedule"},
			{Year: 2030, Date: "Jan 2030", Standard: decimal.NewFromFloat(15.90), Tipped: decimal.NewFromFloat(7.00),
				Note: "Estimated CPI adjustment with 44% tipped schedule"},
			{Year: 2031, Date: "Jan 2031", Standard: decimal.NewFromFloat(16.20), Tipped: decimal.NewFromFloat(7.29),
				Note: "Estimated CPI adjustment with 45% tipped schedule"},
		},
	},
	{
		State: "Illinois",
		Color: "#c81e1e",
		Points: []domain.WagePoint{
			{Year: 2023, Date: "Jan 2023", Standard: decimal.NewFromFloat(13.00), Tipped: decimal.NewFromFloat(7.80),
				Note: "Tipped wage is 60% of standard"},
			{Year: 2024, Date: "Jan 2024", Standard: decimal.NewFromFloat(14.00), Tipped: decimal.NewFromFloat(8.40),
				Note: "Annual scheduled increase"},
			{Year: 2025, Date: "Jan 2025", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "$15 floor reached statewide"},
			{Year: 2026, Date: "Jan 2026", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "Current Illinois statewide rate as of Jan 2026"},
			{Year: 2027, Date: "Jan 2027", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "Assumes no statutory change"},
			{Year: 2028, Date: "Jan 2028", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "Assumes no statutory change"},
			{Year: 2029, Date: "Jan 2029", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "Assumes no statutory change"},
			{Year: 2030, Date: "Jan 2030", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "Assumes no statutory change"},
			{Year: 2031, Date: "Jan 2031", Standard: decimal.NewFromFloat(15.00), Tipped: decimal.NewFromFloat(9.00),
				Note: "Assumes no statutory change"},
		},
	},
	{
		State: "Ohio",
		Color: "#057a55",
		Points: []domain.WagePoint{
			{Year: 2023, Date: "Jan 2023", Standard: decimal.NewFromFloat(10.10), Tipped: decimal.NewFromFloat(5.05),
				Note: "Tipped wage is 50% of standard"},
			{Year: 2024, Date: "Jan 2024", Standard: decimal.NewFromFloat(10.45), Tipped: decimal.NewFromFloat(5.23),
				Note: "CPI adjustment per Ohio Constitution"},
			{Year: 2025, Date: "Jan 2025", Standard: decimal.NewFromFloat(10.70), Tipped: decimal.NewFromFloat(5.35),
				Note: "CPI adjustment"},
			{Year: 2026, Date: "Jan 2026", Standard: decimal.NewFromFloat(11.00), Tipped: decimal.NewFromFloat(5.50),
				Note: "Confirmed by Ohio annual minimum wage posting"},
			{Year: 2027, Date: "Jan 2027", Standard: decimal.NewFromFloat(11.10), Tipped: decimal.NewFromFloat(5.55),
				Note: "Estimated CPI adjustment"},
			{Year: 2028, Date: "Jan 2028", Standard: decimal.NewFromFloat(11.40), Tipped: decimal.NewFromFloat(5.70),
				Note: "Estimated CPI adjustment"},
			{Year: 2029, Date: "Jan 2029", Standard: decimal.NewFromFloat(11.70), Tipped: decimal.NewFromFloat(5.85),
				Note: "Estimated CPI adjustment"},
			{Year: 2030, Date: "Jan 2030", Standard: decimal.NewFromFloat(12.00), Tipped: decimal.NewFromFloat(6.00),
				Note: "Estimated CPI adjustment"},
			{Year: 2031, Date: "Jan 2031", Standard: decimal.NewFromFloat(12.30), Tipped: decimal.NewFromFloat(6.15),
				Note: "Estimated CPI adjustment"},
		},
	},
}
