package scholarship

import (
	"github.com/mwcivic/civictools/internal/domain"
	"github.com/shopspring/decimal"
)

func corp(name string, tier domain.FundingTier, perPupil int64) domain.SchoolCorporation {
	return domain.SchoolCorporation{Name: name, Tier: tier, PerPupil: decimal.NewFromInt(perPupil)}
}

// All 92 Indiana counties with their public school corporations.
// Per-pupil funding is estimated from district size and reported ADM
// funding, approximate 2026-27 values.
var counties = map[string]domain.County{
	"Adams": {Name: "Adams", Corporations: []domain.SchoolCorporation{
		corp("South Adams Schools", domain.TierRural, 6800),
		corp("North Adams Community Schools", domain.TierRural, 6800),
	}},
	"Allen": {Name: "Allen", Corporations: []domain.SchoolCorporation{
		corp("Fort Wayne Community Schools", domain.TierMidHigh, 7800),
		corp("East Allen County Schools", domain.TierMid, 7400),
		corp("Northwest Allen County Schools", domain.TierMid, 7400),
		corp("Southwest Allen County Schools", domain.TierMid, 7400),
	}},
	"Bartholomew": {Name: "Bartholomew", Corporations: []domain.SchoolCorporation{
		corp("Bartholomew Consolidated School Corp (Columbus)", domain.TierMid, 7400),
	}},
	"Benton": {Name: "Benton", Corporations: []domain.SchoolCorporation{
		corp("Benton Community School Corp", domain.TierRural, 6800),
	}},
	"Blackford": {Name: "Blackford", Corporations: []domain.SchoolCorporation{
		corp("Blackford County Schools", domain.TierRural, 6800),
	}},
	"Boone": {Name: "Boone", Corporations: []domain.SchoolCorporation{
		corp("Western Boone County Community Schools", domain.TierMid, 7400),
		corp("Zionsville Community Schools", domain.TierHigh, 8200),
	}},
	"Brown": {Name: "Brown", Corporations: []domain.SchoolCorporation{
		corp("Brown County School Corp", domain.TierRural, 6800),
	}},
	"Carroll": {Name: "Carroll", Corporations: []domain.SchoolCorporation{
		corp("Carroll Consolidated School Corp", domain.TierRural, 6800),
		corp("Delphi Community School Corp", domain.TierRural, 6800),
	}},
	"Cass": {Name: "Cass", Corporations: []domain.SchoolCorporation{
		corp("Logansport Community School Corp", domain.TierRural, 6800),
		corp("Pioneer Regional School Corp", domain.TierRural, 6800),
	}},
	"Clark": {Name: "Clark", Corporations: []domain.SchoolCorporation{
		corp("Clarksville Community School Corp", domain.TierMid, 7400),
		corp("Greater Clark County Schools", domain.TierMid, 7400),
		corp("Silver Creek School Corp", domain.TierRural, 6800),
	}},
	"Clay": {Name: "Clay", Corporations: []domain.SchoolCorporation{
		corp("Clay Community Schools", domain.TierRural, 6800),
	}},
	"Clinton": {Name: "Clinton", Corporations: []domain.SchoolCorporation{
		corp("Clinton Prairie School Corp", domain.TierRural, 6800),
		corp("Frankfort Community Schools", domain.TierRural, 6800),
	}},
	"Crawford": {Name: "Crawford", Corporations: []domain.SchoolCorporation{
		corp("Crawford County Consolidated School Corp", domain.TierRural, 6800),
	}},
	"Daviess": {Name: "Daviess", Corporations: []domain.SchoolCorporation{
		corp("Daviess County Schools", domain.TierRural, 6800),
	}},
	"Dearborn": {Name: "Dearborn", Corporations: []domain.SchoolCorporation{
		corp("Lawrenceburg Community School Corp", domain.TierMid, 7400),
		corp("South Dearborn Community School Corp", domain.TierRural, 6800),
	}},
	"Decatur": {Name: "Decatur", Corporations: []domain.SchoolCorporation{
		corp("Decatur County Community Schools", domain.TierRural, 6800),
	}},
	"DeKalb": {Name: "DeKalb", Corporations: []domain.SchoolCorporation{
		corp("DeKalb County Central United School District", domain.TierRural, 6800),
		corp("DeKalb County Eastern Community Schools", domain.TierRural, 6800),
	}},
	"Delaware": {Name: "Delaware", Corporations: []domain.SchoolCorporation{
		corp("Muncie Community Schools", domain.TierMidHigh, 7800),
		corp("Delaware Community School Corp", domain.TierRural, 6800),
	}},
	"Dubois": {Name: "Dubois", Corporations: []domain.SchoolCorporation{
		corp("Dubois County Schools", domain.TierRural, 6800),
		corp("Northeast Dubois County School Corp", domain.TierRural, 6800),
	}},
	"Elkhart": {Name: "Elkhart", Corporations: []domain.SchoolCorporation{
		corp("Elkhart Community Schools", domain.TierMidHigh, 7800),
		corp("Goshen Community Schools", domain.TierMid, 7400),
		corp("Baugo Community Schools", domain.TierRural, 6800),
	}},
	"Fayette": {Name: "Fayette", Corporations: []domain.SchoolCorporation{
		corp("Fayette County School Corp", domain.TierRural, 6800),
	}},
	"Floyd": {Name: "Floyd", Corporations: []domain.SchoolCorporation{
		corp("New Albany-Floyd County Consolidated Schools", domain.TierMid, 7400),
	}},
	"Fountain": {Name: "Fountain", Corporations: []domain.SchoolCorporation{
		corp("Fountain County Schools", domain.TierRural, 6800),
	}},
	"Franklin": {Name: "Franklin", Corporations: []domain.SchoolCorporation{
		corp("Franklin County Community School Corp", domain.TierRural, 6800),
	}},
	"Fulton": {Name: "Fulton", Corporations: []domain.SchoolCorporation{
		corp("Rochester Community School Corp", domain.TierRural, 6800),
		corp("Caston School Corp", domain.TierRural, 6800),
	}},
	"Gibson": {Name: "Gibson", Corporations: []domain.SchoolCorporation{
		corp("Gibson County Schools", domain.TierRural, 6800),
		corp("South Gibson School Corp", domain.TierRural, 6800),
	}},
	"Grant": {Name: "Grant", Corporations: []domain.SchoolCorporation{
		corp("Marion Community Schools", domain.TierMid, 7400),
		corp("Eastbrook Community School Corp", domain.TierRural, 6800),
	}},
	"Greene": {Name: "Greene", Corporations: []domain.SchoolCorporation{
		corp("Linton-Stockton School Corp", domain.TierRural, 6800),
		corp("Shakamak Schools", domain.TierRural, 6800),
	}},
	"Hamilton": {Name: "Hamilton", Corporations: []domain.SchoolCorporation{
		corp("Carmel Clay Schools", domain.TierHigh, 8200),
		corp("Hamilton Southeastern Schools", domain.TierHigh, 8200),
		corp("Westfield-Washington Schools", domain.TierHigh, 8200),
		corp("Noblesville Schools", domain.TierMid, 7400),
		corp("Hamilton Heights School Corp", domain.TierRural, 6800),
	}},
	"Hancock": {Name: "Hancock", Corporations: []domain.SchoolCorporation{
		corp("Greenfield-Central Community Schools", domain.TierMid, 7400),
		corp("Mt Vernon Community School Corp (Hancock)", domain.TierMid, 7400),
	}},
	"Harrison": {Name: "Harrison", Corporations: []domain.SchoolCorporation{
		corp("Corydon Consolidated School Corp", domain.TierRural, 6800),
		corp("North Harrison Community School Corp", domain.TierRural, 6800),
	}},
	"Hendricks": {Name: "Hendricks", Corporations: []domain.SchoolCorporation{
		corp("Avon Community School Corp", domain.TierHigh, 8200),
		corp("Brownsburg Community School Corp", domain.TierHigh, 8200),
		corp("Plainfield Community School Corp", domain.TierHigh, 8200),
		corp("Danville Community School Corp", domain.TierMid, 7400),
	}},
	"Henry": {Name: "Henry", Corporations: []domain.SchoolCorporation{
		corp("New Castle Community School Corp", domain.TierRural, 6800),
		corp("South Henry School Corp", domain.TierRural, 6800),
	}},
	"Howard": {Name: "Howard", Corporations: []domain.SchoolCorporation{
		corp("Kokomo-Center Township Consolidated School Corp", domain.TierMid, 7400),
		corp("Northwestern School Corp (Howard)", domain.TierRural, 6800),
	}},
	"Huntington": {Name: "Huntington", Corporations: []domain.SchoolCorporation{
		corp("Huntington County Community School Corp", domain.TierRural, 6800),
	}},
	"Jackson": {Name: "Jackson", Corporations: []domain.SchoolCorporation{
		corp("Seymour Community Schools", domain.TierMid, 7400),
		corp("Brownstown Central Community School Corp", domain.TierRural, 6800),
	}},
	"Jasper": {Name: "Jasper", Corporations: []domain.SchoolCorporation{
		corp("Kankakee Valley School Corp", domain.TierRural, 6800),
		corp("Rensselaer Central School Corp", domain.TierRural, 6800),
	}},
	"Jay": {Name: "Jay", Corporations: []domain.SchoolCorporation{
		corp("Jay School Corp", domain.TierRural, 6800),
	}},
	"Jefferson": {Name: "Jefferson", Corporations: []domain.SchoolCorporation{
		corp("Madison Consolidated Schools", domain.TierMid, 7400),
	}},
	"Jennings": {Name: "Jennings", Corporations: []domain.SchoolCorporation{
		corp("Jennings County Schools", domain.TierRural, 6800),
	}},
	"Johnson": {Name: "Johnson", Corporations: []domain.SchoolCorporation{
		corp("Center Grove Community School Corp", domain.TierHigh, 8200),
		corp("Clark-Pleasant Community School Corp", domain.TierMid, 7400),
		corp("Franklin Community School Corp", domain.TierMid, 7400),
	}},
	"Knox": {Name: "Knox", Corporations: []domain.SchoolCorporation{
		corp("South Knox School Corp", domain.TierRural, 6800),
		corp("Vincennes Community School Corp", domain.TierMid, 7400),
	}},
	"Kosciusko": {Name: "Kosciusko", Corporations: []domain.SchoolCorporation{
		corp("Warsaw Community Schools", domain.TierMid, 7400),
		corp("Wawasee Community School Corp", domain.TierRural, 6800),
	}},
	"LaGrange": {Name: "LaGrange", Corporations: []domain.SchoolCorporation{
		corp("Lakeland School Corp", domain.TierRural, 6800),
		corp("Prairie Heights Community School Corp", domain.TierRural, 6800),
	}},
	"Lake": {Name: "Lake", Corporations: []domain.SchoolCorporation{
		corp("Hammond School City", domain.TierMidHigh, 7800),
		corp("Gary Community School Corp", domain.TierMidHigh, 7800),
		corp("Lake Central School Corp", domain.TierMid, 7400),
		corp("Merrillville Community School Corp", domain.TierMid, 7400),
	}},
	"LaPorte": {Name: "LaPorte", Corporations: []domain.SchoolCorporation{
		corp("LaPorte Community School Corp", domain.TierMid, 7400),
		corp("Michigan City Area Schools", domain.TierMid, 7400),
	}},
	"Lawrence": {Name: "Lawrence", Corporations: []domain.SchoolCorporation{
		corp("Mitchell Community Schools", domain.TierRural, 6800),
		corp("North Lawrence Community Schools", domain.TierRural, 6800),
	}},
	"Madison": {Name: "Madison", Corporations: []domain.SchoolCorporation{
		corp("Anderson Community School Corp", domain.TierMidHigh, 7800),
		corp("Pendleton Heights Community School Corp", domain.TierMid, 7400),
	}},
	"Marion": {Name: "Marion", Corporations: []domain.SchoolCorporation{
		corp("Indianapolis Public Schools (IPS)", domain.TierMidHigh, 7800),
		corp("Lawrence Township Schools", domain.TierMid, 7400),
		corp("Washington Township Schools", domain.TierMid, 7400),
		corp("Perry Township Schools", domain.TierMid, 7400),
		corp("Wayne Township Schools (MSD)", domain.TierMid, 7400),
		corp("Pike Township Schools (MSD)", domain.TierMid, 7400),
		corp("Warren Township Schools (MSD)", domain.TierMid, 7400),
		corp("Franklin Township Community School Corp", domain.TierMid, 7400),
	}},
	"Marshall": {Name: "Marshall", Corporations: []domain.SchoolCorporation{
		corp("Plymouth Community School Corp", domain.TierRural, 6800),
		corp("Triton School Corp", domain.TierRural, 6800),
	}},
	"Martin": {Name: "Martin", Corporations: []domain.SchoolCorporation{
		corp("Loogootee Community School Corp", domain.TierRural, 6800),
		corp("Shoals Community School Corp", domain.TierRural, 6800),
	}},
	"Miami": {Name: "Miami", Corporations: []domain.SchoolCorporation{
		corp("Northwestern School Corp (Miami)", domain.TierRural, 6800),
		corp("Peru Community Schools", domain.TierRural, 6800),
	}},
	"Monroe": {Name: "Monroe", Corporations: []domain.SchoolCorporation{
		corp("Monroe County Community School Corp (Bloomington)", domain.TierMid, 7400),
	}},
	"Montgomery": {Name: "Montgomery", Corporations: []domain.SchoolCorporation{
		corp("Crawfordsville Community School Corp", domain.TierRural, 6800),
		corp("North Montgomery Community School Corp", domain.TierRural, 6800),
	}},
	"Morgan": {Name: "Morgan", Corporations: []domain.SchoolCorporation{
		corp("Martinsville Schools", domain.TierMid, 7400),
		corp("Mooresville Consolidated School Corp", domain.TierMid, 7400),
	}},
	"Newton": {Name: "Newton", Corporations: []domain.SchoolCorporation{
		corp("South Newton School Corp", domain.TierRural, 6800),
		corp("North Newton School Corp", domain.TierRural, 6800),
	}},
	"Noble": {Name: "Noble", Corporations: []domain.SchoolCorporation{
		corp("East Noble School Corp", domain.TierRural, 6800),
		corp("West Noble School Corp", domain.TierRural, 6800),
	}},
	"Ohio": {Name: "Ohio", Corporations: []domain.SchoolCorporation{
		corp("Ohio County Schools", domain.TierRural, 6800),
	}},
	"Orange": {Name: "Orange", Corporations: []domain.SchoolCorporation{
		corp("Orleans Community Schools", domain.TierRural, 6800),
		corp("Paoli Community School Corp", domain.TierRural, 6800),
	}},
	"Owen": {Name: "Owen", Corporations: []domain.SchoolCorporation{
		corp("Spencer-Owen Community Schools", domain.TierRural, 6800),
	}},
	"Parke": {Name: "Parke", Corporations: []domain.SchoolCorporation{
		corp("Turkey Run Community School Corp", domain.TierRural, 6800),
		corp("Rockville Community School Corp", domain.TierRural, 6800),
	}},
	"Perry": {Name: "Perry", Corporations: []domain.SchoolCorporation{
		corp("Tell City-Troy Township School Corp", domain.TierRural, 6800),
	}},
	"Pike": {Name: "Pike", Corporations: []domain.SchoolCorporation{
		corp("Pike County School Corp", domain.TierRural, 6800),
	}},
	"Porter": {Name: "Porter", Corporations: []domain.SchoolCorporation{
		corp("Portage Township Schools", domain.TierMid, 7400),
		corp("Valparaiso Community Schools", domain.TierMid, 7400),
		corp("Duneland School Corp", domain.TierMid, 7400),
	}},
	"Posey": {Name: "Posey", Corporations: []domain.SchoolCorporation{
		corp("Mount Vernon Community School Corp (Posey)", domain.TierRural, 6800),
		corp("North Posey County Schools", domain.TierRural, 6800),
	}},
	"Pulaski": {Name: "Pulaski", Corporations: []domain.SchoolCorporation{
		corp("Winamac Community School Corp", domain.TierRural, 6800),
	}},
	"Putnam": {Name: "Putnam", Corporations: []domain.SchoolCorporation{
		corp("Greencastle Community School Corp", domain.TierRural, 6800),
		corp("South Putnam Community Schools", domain.TierRural, 6800),
	}},
	"Randolph": {Name: "Randolph", Corporations: []domain.SchoolCorporation{
		corp("Monroe Central School Corp", domain.TierRural, 6800),
		corp("Randolph Eastern School Corp", domain.TierRural, 6800),
	}},
	"Ripley": {Name: "Ripley", Corporations: []domain.SchoolCorporation{
		corp("South Ripley Community School Corp", domain.TierRural, 6800),
		corp("Batesville Community School Corp", domain.TierRural, 6800),
	}},
	"Rush": {Name: "Rush", Corporations: []domain.SchoolCorporation{
		corp("Rush County Schools", domain.TierRural, 6800),
	}},
	"St. Joseph": {Name: "St. Joseph", Corporations: []domain.SchoolCorporation{
		corp("South Bend Community School Corp", domain.TierMidHigh, 7800),
		corp("Penn-Harris-Madison School Corp", domain.TierMid, 7400),
		corp("Mishawaka School City", domain.TierMid, 7400),
	}},
	"Scott": {Name: "Scott", Corporations: []domain.SchoolCorporation{
		corp("Scott County School District 1", domain.TierRural, 6800),
		corp("Scott County School District 2", domain.TierRural, 6800),
	}},
	"Shelby": {Name: "Shelby", Corporations: []domain.SchoolCorporation{
		corp("Shelbyville Central Schools", domain.TierMid, 7400),
		corp("Southwestern Consolidated School Corp (Shelby)", domain.TierRural, 6800),
	}},
	"Spencer": {Name: "Spencer", Corporations: []domain.SchoolCorporation{
		corp("North Spencer County School Corp", domain.TierRural, 6800),
		corp("South Spencer County School Corp", domain.TierRural, 6800),
	}},
	"Starke": {Name: "Starke", Corporations: []domain.SchoolCorporation{
		corp("Knox Community School Corp", domain.TierRural, 6800),
		corp("Oregon-Davis School Corp", domain.TierRural, 6800),
	}},
	"Steuben": {Name: "Steuben", Corporations: []domain.SchoolCorporation{
		corp("Angola Community School Corp", domain.TierRural, 6800),
		corp("Fremont Community Schools", domain.TierRural, 6800),
	}},
	"Sullivan": {Name: "Sullivan", Corporations: []domain.SchoolCorporation{
		corp("Northeast School Corp (Sullivan)", domain.TierRural, 6800),
		corp("Sullivan County Community School Corp", domain.TierRural, 6800),
	}},
	"Switzerland": {Name: "Switzerland", Corporations: []domain.SchoolCorporation{
		corp("Switzerland County School Corp", domain.TierRural, 6800),
	}},
	"Tippecanoe": {Name: "Tippecanoe", Corporations: []domain.SchoolCorporation{
		corp("Lafayette School Corp", domain.TierMidHigh, 7800),
		corp("Tippecanoe School Corp", domain.TierMid, 7400),
		corp("West Lafayette Community School Corp", domain.TierMid, 7400),
	}},
	"Tipton": {Name: "Tipton", Corporations: []domain.SchoolCorporation{
		corp("Tipton Community School Corp", domain.TierRural, 6800),
	}},
	"Union": {Name: "Union", Corporations: []domain.SchoolCorporation{
		corp("Union County-College Corner Joint School District", domain.TierRural, 6800),
	}},
	"Vanderburgh": {Name: "Vanderburgh", Corporations: []domain.SchoolCorporation{
		corp("Evansville Vanderburgh School Corp", domain.TierMidHigh, 7800),
	}},
	"Vermillion": {Name: "Vermillion", Corporations: []domain.SchoolCorporation{
		corp("South Vermillion Community School Corp", domain.TierRural, 6800),
		corp("North Vermillion Community School Corp", domain.TierRural, 6800),
	}},
	"Vigo": {Name: "Vigo", Corporations: []domain.SchoolCorporation{
		corp("Vigo County School Corp (Terre Haute)", domain.TierMidHigh, 7800),
	}},
	"Wabash": {Name: "Wabash", Corporations: []domain.SchoolCorporation{
		corp("Wabash City Schools", domain.TierRural, 6800),
		corp("MSD Wabash County Schools", domain.TierRural, 6800),
	}},
	"Warren": {Name: "Warren", Corporations: []domain.SchoolCorporation{
		corp("Benton Central Jr-Sr High School", domain.TierRural, 6800),
	}},
	"Warrick": {Name: "Warrick", Corporations: []domain.SchoolCorporation{
		corp("Warrick County School Corp", domain.TierMid, 7400),
	}},
	"Washington": {Name: "Washington", Corporations: []domain.SchoolCorporation{
		corp("Salem Community Schools", domain.TierRural, 6800),
		corp("West Washington School Corp", domain.TierRural, 6800),
	}},
	"Wayne": {Name: "Wayne", Corporations: []domain.SchoolCorporation{
		corp("Richmond Community Schools", domain.TierMid, 7400),
		corp("Centerville-Abington Community Schools", domain.TierRural, 6800),
	}},
	"Wells": {Name: "Wells", Corporations: []domain.SchoolCorporation{
		corp("Bluffton-Harrison Metropolitan School District", domain.TierRural, 6800),
		corp("Southern Wells Community Schools", domain.TierRural, 6800),
	}},
	"White": {Name: "White", Corporations: []domain.SchoolCorporation{
		corp("Frontier School Corp", domain.TierRural, 6800),
		corp("Twin Lakes School Corp", domain.TierRural, 6800),
	}},
	"Whitley": {Name: "Whitley", Corporations: []domain.SchoolCorporation{
		corp("Columbia City Joint Unified School Corp", domain.TierRural, 6800),
		corp("Whitko Community School Corp", domain.TierRural, 6800),
	}},
}
