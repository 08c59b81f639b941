package models

// Country represents one country's food waste estimates in API responses.
// Sector estimates are pointers because the source dataset leaves them blank
// for countries with low-confidence data.
type Country struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Region                 string   `json:"region"`
	Confidence             string   `json:"confidence"`
	CombinedKgPerCapita    float64  `json:"combinedKgPerCapita"`
	HouseholdKgPerCapita   *float64 `json:"householdKgPerCapita"`
	RetailKgPerCapita      *float64 `json:"retailKgPerCapita"`
	FoodServiceKgPerCapita *float64 `json:"foodServiceKgPerCapita"`
	HouseholdTonnes        *float64 `json:"householdTonnes"`
	RetailTonnes           *float64 `json:"retailTonnes"`
	FoodServiceTonnes      *float64 `json:"foodServiceTonnes"`
	Cluster                int      `json:"cluster"`
}

// NewCountry creates a new Country instance with the provided values
func NewCountry(id, name, region, confidence string, combined float64, household, retail, foodService, householdTonnes, retailTonnes, foodServiceTonnes *float64, cluster int) Country {
	return Country{
		ID:                     id,
		Name:                   name,
		Region:                 region,
		Confidence:             confidence,
		CombinedKgPerCapita:    combined,
		HouseholdKgPerCapita:   household,
		RetailKgPerCapita:      retail,
		FoodServiceKgPerCapita: foodService,
		HouseholdTonnes:        householdTonnes,
		RetailTonnes:           retailTonnes,
		FoodServiceTonnes:      foodServiceTonnes,
		Cluster:                cluster,
	}
}

// CountryReference is the compact country representation used in the
// references section of responses.
type CountryReference struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// NewCountryReference creates a new CountryReference instance with the provided values
func NewCountryReference(id, name, region string) CountryReference {
	return CountryReference{
		ID:     id,
		Name:   name,
		Region: region,
	}
}

// SectorEntry is a single sector's share of a country's waste.
type SectorEntry struct {
	Sector       string   `json:"sector"`
	KgPerCapita  float64  `json:"kgPerCapita"`
	TotalTonnes  *float64 `json:"totalTonnes"`
	ShareOfTotal float64  `json:"shareOfTotal"`
}

// SectorBreakdown is the per-sector waste distribution for one country.
type SectorBreakdown struct {
	CountryID string        `json:"countryId"`
	Sectors   []SectorEntry `json:"sectors"`
}
