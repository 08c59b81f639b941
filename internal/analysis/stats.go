package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"wastewatch.io/internal/models"
)

// Median returns the median of values, ignoring NaNs. It returns NaN when no
// values are present.
func Median(values []float64) float64 {
	clean := present(values)
	if len(clean) == 0 {
		return math.NaN()
	}
	sort.Float64s(clean)
	return stat.Quantile(0.5, stat.Empirical, clean, nil)
}

// Summarize computes dataset-level descriptive statistics. RowsDropped and
// LastUpdated are filled in by the caller, which knows the load context.
func Summarize(metrics []CountryMetrics) models.SummaryStats {
	summary := models.SummaryStats{
		CountryCount: len(metrics),
		Regions:      []models.RegionStats{},
	}
	if len(metrics) == 0 {
		return summary
	}

	combined := make([]float64, len(metrics))
	regionValues := make(map[string][]float64)
	for i, m := range metrics {
		combined[i] = m.Combined
		regionValues[m.Region] = append(regionValues[m.Region], m.Combined)

		if !math.IsNaN(m.HouseholdTonnes) {
			summary.HouseholdTotal += m.HouseholdTonnes
		}
		if !math.IsNaN(m.RetailTonnes) {
			summary.RetailTotal += m.RetailTonnes
		}
		if !math.IsNaN(m.FoodServiceTonnes) {
			summary.FoodServiceTotal += m.FoodServiceTonnes
		}
	}

	summary.CombinedMean = stat.Mean(combined, nil)
	summary.CombinedMedian = Median(combined)
	if len(combined) > 1 {
		summary.CombinedStdDev = stat.StdDev(combined, nil)
	}

	sorted := append([]float64(nil), combined...)
	sort.Float64s(sorted)
	summary.CombinedMin = sorted[0]
	summary.CombinedMax = sorted[len(sorted)-1]

	regions := make([]string, 0, len(regionValues))
	for region := range regionValues {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	for _, region := range regions {
		values := regionValues[region]
		summary.Regions = append(summary.Regions, models.RegionStats{
			Region:       region,
			CountryCount: len(values),
			CombinedMean: stat.Mean(values, nil),
		})
	}

	return summary
}
