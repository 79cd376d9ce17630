package catalog

import (
	"github.com/mwcivic/civictools/internal/domain"
)

// Seed data for the Indiana SNAP item checker. Reflects the state's
// USDA-approved waiver excluding candy and sugary drinks, effective
// January 1, 2026, with the FSSA transition period through March 31,
// 2026. Statuses follow three published rules of thumb:
//
//   - Refrigeration rule: foods that require refrigeration or freezing
//     stay eligible even when sugary (ice cream, chocolate milk).
//   - Flour rule: items whose primary ingredient is grain or flour stay
//     eligible (cookies, Pop-Tarts) even when sweet.
//   - Sugary drink rule: beverages with added sweeteners and no milk,
//     juice, or protein are excluded.
//
// Last verified: February 2026. Retail POS systems may classify
// individual UPCs differently.
var seedItems = []domain.SNAPItem{
	{ID: 1, Name: "Regular soda (Coke, Pepsi, Sprite)", Category: domain.CategoryBeverages, Status: domain.StatusNotEligible,
		Reason: "Sweetened beverage with no milk, juice, or protein"},
	{ID: 2, Name: "Diet soda", Category: domain.CategoryBeverages, Status: domain.StatusNotEligible,
		Reason: "Artificially sweetened beverages are covered by the waiver",
		Notes:  "The waiver excludes beverages with any added sweetener, caloric or not."},
	{ID: 3, Name: "100% orange juice", Category: domain.CategoryBeverages, Status: domain.StatusEligible,
		Reason: "100% juice has no added sweeteners"},
	{ID: 4, Name: "Juice cocktail (10% juice)", Category: domain.CategoryBeverages, Status: domain.StatusNotEligible,
		Reason: "Sweetened juice drink below the juice-content threshold"},
	{ID: 5, Name: "Gatorade / sports drinks", Category: domain.CategoryBeverages, Status: domain.StatusNotEligible,
		Reason: "Added sweeteners, no milk, juice, or protein"},
	{ID: 6, Name: "Sweet tea (bottled)", Category: domain.CategoryBeverages, Status: domain.StatusNotEligible,
		Reason: "Sweetened beverage under the sugary drink rule"},
	{ID: 7, Name: "Unsweetened sparkling water", Category: domain.CategoryBeverages, Status: domain.StatusEligible,
		Reason: "No added sweeteners"},
	{ID: 8, Name: "Energy drinks (Red Bull, Monster)", Category: domain.CategoryBeverages, Status: domain.StatusCheckLabel,
		Reason: "Depends on the label: Supplement Facts means not eligible",
		Notes:  "Versions carrying a Nutrition Facts label are treated as sweetened beverages and excluded anyway; versions with a Supplement Facts label were never SNAP eligible."},
	{ID: 9, Name: "Bottled cold brew coffee", Category: domain.CategoryBeverages, Status: domain.StatusCheckLabel,
		Reason: "Unsweetened black versions eligible; sweetened versions excluded",
		Notes:  "Milk-based sweetened coffee drinks keep eligibility through the milk exception."},
	{ID: 10, Name: "Kombucha", Category: domain.CategoryBeverages, Status: domain.StatusCheckLabel,
		Reason: "Eligible only if alcohol content is below 0.5% ABV and no added sweeteners"},

	{ID: 11, Name: "Potato chips", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Savory snack foods remain eligible"},
	{ID: 12, Name: "Cookies (Oreos, Chips Ahoy)", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Flour is the primary ingredient, so the candy exclusion does not apply"},
	{ID: 13, Name: "Granola bars", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Grain-based snack under the flour rule",
		Notes:  "Bars sold with a Supplement Facts label (many protein bars) are not eligible."},
	{ID: 14, Name: "Pop-Tarts", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Flour-based pastry, not candy"},
	{ID: 15, Name: "Snack cakes (Little Debbie)", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Flour-based bakery item"},
	{ID: 16, Name: "Trail mix with chocolate pieces", Category: domain.CategorySnacks, Status: domain.StatusCheckLabel,
		Reason: "Mixes where candy pieces dominate can scan as candy",
		Notes:  "Nut-forward mixes are eligible; candy-coated mixes vary by retailer POS mapping."},
	{ID: 17, Name: "Beef jerky", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Meat snack, unaffected by the waiver"},
	{ID: 18, Name: "Crackers", Category: domain.CategorySnacks, Status: domain.StatusEligible,
		Reason: "Flour-based staple snack"},

	{ID: 19, Name: "Kit Kat / chocolate bars", Category: domain.CategoryCandy, Status: domain.StatusNotEligible,
		Reason: "Candy is excluded under the 2026 waiver",
		Notes:  "Kit Kat contains flour, but Indiana's waiver definition follows the retail candy classification, not the flour test used by some other states."},
	{ID: 20, Name: "Gummy bears", Category: domain.CategoryCandy, Status: domain.StatusNotEligible,
		Reason: "Candy is excluded under the 2026 waiver"},
	{ID: 21, Name: "Chocolate-covered raisins", Category: domain.CategoryCandy, Status: domain.StatusNotEligible,
		Reason: "Sold and classified as candy"},
	{ID: 22, Name: "Chewing gum", Category: domain.CategoryCandy, Status: domain.StatusNotEligible,
		Reason: "Candy classification; was already ineligible in most formulations"},
	{ID: 23, Name: "Marshmallows", Category: domain.CategoryCandy, Status: domain.StatusCheckLabel,
		Reason: "Classified as candy at some retailers, baking ingredient at others"},
	{ID: 24, Name: "Baking chocolate chips", Category: domain.CategoryCandy, Status: domain.StatusEligible,
		Reason: "Baking ingredient, not candy"},

	{ID: 25, Name: "Whole milk", Category: domain.CategoryDairy, Status: domain.StatusEligible,
		Reason: "Staple dairy food"},
	{ID: 26, Name: "Chocolate milk", Category: domain.CategoryDairy, Status: domain.StatusEligible,
		Reason: "Contains milk, so the sugary drink rule does not apply"},
	{ID: 27, Name: "Yogurt (including sweetened)", Category: domain.CategoryDairy, Status: domain.StatusEligible,
		Reason: "Refrigerated dairy food"},
	{ID: 28, Name: "Cheese", Category: domain.CategoryDairy, Status: domain.StatusEligible,
		Reason: "Staple dairy food"},
	{ID: 29, Name: "Drinkable yogurt smoothies", Category: domain.CategoryDairy, Status: domain.StatusEligible,
		Reason: "Milk-based beverage, exempt from the sugary drink rule"},

	{ID: 30, Name: "Ice cream", Category: domain.CategoryFrozen, Status: domain.StatusEligible,
		Reason: "Requires freezing, so the refrigeration rule keeps it eligible"},
	{ID: 31, Name: "Frozen fruit popsicles", Category: domain.CategoryFrozen, Status: domain.StatusEligible,
		Reason: "Frozen food under the refrigeration rule"},
	{ID: 32, Name: "Frozen pizza", Category: domain.CategoryFrozen, Status: domain.StatusEligible,
		Reason: "Frozen prepared food for home preparation"},
	{ID: 33, Name: "Frozen vegetables", Category: domain.CategoryFrozen, Status: domain.StatusEligible,
		Reason: "Staple frozen food"},

	{ID: 34, Name: "Multivitamins", Category: domain.CategorySupplements, Status: domain.StatusNotEligible,
		Reason: "Supplement Facts label; never SNAP eligible"},
	{ID: 35, Name: "Protein powder", Category: domain.CategorySupplements, Status: domain.StatusNotEligible,
		Reason: "Sold as a supplement, not a food"},
	{ID: 36, Name: "Meal replacement shakes (Ensure, Boost)", Category: domain.CategorySupplements, Status: domain.StatusCheckLabel,
		Reason: "Nutrition Facts label versions are eligible; Supplement Facts are not"},
	{ID: 37, Name: "Cough drops", Category: domain.CategorySupplements, Status: domain.StatusNotEligible,
		Reason: "Classified as an over-the-counter medicine"},

	{ID: 38, Name: "Bread", Category: domain.CategoryStaples, Status: domain.StatusEligible,
		Reason: "Staple food"},
	{ID: 39, Name: "Rice", Category: domain.CategoryStaples, Status: domain.StatusEligible,
		Reason: "Staple food"},
	{ID: 40, Name: "Breakfast cereal", Category: domain.CategoryStaples, Status: domain.StatusEligible,
		Reason: "Grain-based staple, even sweetened varieties"},
	{ID: 41, Name: "Peanut butter", Category: domain.CategoryStaples, Status: domain.StatusEligible,
		Reason: "Staple food"},
	{ID: 42, Name: "Honey", Category: domain.CategoryStaples, Status: domain.StatusEligible,
		Reason: "Sweetener sold as a food ingredient, not candy"},
	{ID: 43, Name: "Rotisserie chicken (hot)", Category: domain.CategoryStaples, Status: domain.StatusNotEligible,
		Reason: "Hot prepared foods are excluded from SNAP nationwide",
		Notes:  "The same chicken sold cold from the refrigerated case is eligible."},
	{ID: 44, Name: "Birthday cake (bakery)", Category: domain.CategoryStaples, Status: domain.StatusEligible,
		Reason: "Flour-based bakery item"},

	{ID: 45, Name: "Infant formula", Category: domain.CategoryBaby, Status: domain.StatusEligible,
		Reason: "Staple infant food"},
	{ID: 46, Name: "Baby food (jars and pouches)", Category: domain.CategoryBaby, Status: domain.StatusEligible,
		Reason: "Staple infant food"},
	{ID: 47, Name: "Toddler electrolyte drinks (Pedialyte)", Category: domain.CategoryBaby, Status: domain.StatusCheckLabel,
		Reason: "Medical-use versions carry non-food labels at some retailers"},
}
