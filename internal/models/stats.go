package models

// SummaryStats describes the cleaned dataset as a whole.
type SummaryStats struct {
	CountryCount     int           `json:"countryCount"`
	RowsDropped      int           `json:"rowsDropped"`
	CombinedMean     float64       `json:"combinedMean"`
	CombinedMedian   float64       `json:"combinedMedian"`
	CombinedStdDev   float64       `json:"combinedStdDev"`
	CombinedMin      float64       `json:"combinedMin"`
	CombinedMax      float64       `json:"combinedMax"`
	HouseholdTotal   float64       `json:"householdTotalTonnes"`
	RetailTotal      float64       `json:"retailTotalTonnes"`
	FoodServiceTotal float64       `json:"foodServiceTotalTonnes"`
	Regions          []RegionStats `json:"regions"`
	LastUpdated      int64         `json:"lastUpdated"`
}

// RegionStats aggregates combined waste per region.
type RegionStats struct {
	Region       string  `json:"region"`
	CountryCount int     `json:"countryCount"`
	CombinedMean float64 `json:"combinedMean"`
}

// RankingEntry is one row of the highest/lowest waste rankings.
type RankingEntry struct {
	Rank                int     `json:"rank"`
	CountryID           string  `json:"countryId"`
	Name                string  `json:"name"`
	Region              string  `json:"region"`
	CombinedKgPerCapita float64 `json:"combinedKgPerCapita"`
}
