// Package analysis computes descriptive statistics over the cleaned waste
// dataset and groups countries into waste-profile clusters.
package analysis

import "math"

// CountryMetrics is the numeric view of one cleaned dataset row. Missing
// values are NaN; Combined is always present because rows without it are
// dropped during cleaning.
type CountryMetrics struct {
	ID                string
	Region            string
	Combined          float64
	Household         float64
	Retail            float64
	FoodService       float64
	HouseholdTonnes   float64
	RetailTonnes      float64
	FoodServiceTonnes float64
}

// FeatureNames are the sector features the clustering runs on, in matrix
// column order.
var FeatureNames = []string{"household", "retail", "foodService"}

func (m CountryMetrics) featureVector() []float64 {
	return []float64{m.Household, m.Retail, m.FoodService}
}

func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
