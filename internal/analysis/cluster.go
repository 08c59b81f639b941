package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"wastewatch.io/internal/models"
)

// DefaultClusterCount is the number of waste-profile groups used when no k is
// configured. Three groups (low, medium, high waste profiles) fit the
// dataset's structure.
const DefaultClusterCount = 3

// ClusterResult holds the outcome of one clustering run.
type ClusterResult struct {
	K         int
	Labels    map[string]int
	Summaries []models.ClusterSummary
}

// ClusterCountries groups countries by waste profile: the three sector
// estimates are median-imputed, standardized, and partitioned with k-means.
// Labels are reassigned in ascending order of each cluster's mean combined
// waste, so label 0 is always the lowest-waste group regardless of the
// partitioner's internal ordering.
func ClusterCountries(metrics []CountryMetrics, k int) (*ClusterResult, error) {
	if k < 2 {
		return nil, fmt.Errorf("cluster count must be at least 2, got %d", k)
	}
	if len(metrics) < k {
		return nil, fmt.Errorf("cannot partition %d countries into %d clusters", len(metrics), k)
	}

	X := buildFeatureMatrix(metrics)
	scaler := &StandardScaler{}
	scaled := scaler.FitTransform(X)

	observations := make(clusters.Observations, len(scaled))
	for i, row := range scaled {
		observations[i] = clusters.Coordinates(row)
	}

	km := kmeans.New()
	partition, err := km.Partition(observations, k)
	if err != nil {
		return nil, fmt.Errorf("partitioning countries: %w", err)
	}

	rawLabels := make([]int, len(metrics))
	for i := range metrics {
		rawLabels[i] = partition.Nearest(observations[i])
	}

	order := labelOrderByCombined(metrics, rawLabels, len(partition))

	result := &ClusterResult{
		K:      len(partition),
		Labels: make(map[string]int, len(metrics)),
	}
	for i, m := range metrics {
		result.Labels[m.ID] = order[rawLabels[i]]
	}
	result.Summaries = summarizeClusters(metrics, partition, rawLabels, order)

	return result, nil
}

// buildFeatureMatrix extracts the sector features and fills missing values
// with the column median, matching the imputation the source analysis uses.
func buildFeatureMatrix(metrics []CountryMetrics) [][]float64 {
	medians := make([]float64, len(FeatureNames))
	for j := range FeatureNames {
		col := make([]float64, len(metrics))
		for i, m := range metrics {
			col[i] = m.featureVector()[j]
		}
		medians[j] = Median(col)
		if math.IsNaN(medians[j]) {
			medians[j] = 0
		}
	}

	X := make([][]float64, len(metrics))
	for i, m := range metrics {
		row := m.featureVector()
		for j, v := range row {
			if math.IsNaN(v) {
				row[j] = medians[j]
			}
		}
		X[i] = row
	}
	return X
}

// labelOrderByCombined maps raw partition indices to stable labels ordered by
// ascending mean combined waste.
func labelOrderByCombined(metrics []CountryMetrics, rawLabels []int, k int) []int {
	sums := make([]float64, k)
	counts := make([]int, k)
	for i, m := range metrics {
		sums[rawLabels[i]] += m.Combined
		counts[rawLabels[i]]++
	}

	type labelMean struct {
		raw  int
		mean float64
	}
	means := make([]labelMean, k)
	for raw := 0; raw < k; raw++ {
		mean := math.Inf(1) // empty clusters sort last
		if counts[raw] > 0 {
			mean = sums[raw] / float64(counts[raw])
		}
		means[raw] = labelMean{raw: raw, mean: mean}
	}
	sort.Slice(means, func(i, j int) bool { return means[i].mean < means[j].mean })

	order := make([]int, k)
	for stable, lm := range means {
		order[lm.raw] = stable
	}
	return order
}

func summarizeClusters(metrics []CountryMetrics, partition clusters.Clusters, rawLabels []int, order []int) []models.ClusterSummary {
	summaries := make([]models.ClusterSummary, len(partition))
	for raw, c := range partition {
		summaries[order[raw]] = models.ClusterSummary{
			Label:      order[raw],
			Centroid:   append([]float64(nil), c.Center...),
			CountryIDs: []string{},
		}
	}

	type accumulator struct {
		combined, household, retail, foodService []float64
	}
	acc := make([]accumulator, len(partition))
	for i, m := range metrics {
		label := order[rawLabels[i]]
		acc[label].combined = append(acc[label].combined, m.Combined)
		acc[label].household = append(acc[label].household, m.Household)
		acc[label].retail = append(acc[label].retail, m.Retail)
		acc[label].foodService = append(acc[label].foodService, m.FoodService)
		summaries[label].CountryIDs = append(summaries[label].CountryIDs, m.ID)
	}

	for label := range summaries {
		summaries[label].Size = len(acc[label].combined)
		summaries[label].MeanCombined = meanOfPresent(acc[label].combined)
		summaries[label].MeanHousehold = meanOfPresent(acc[label].household)
		summaries[label].MeanRetail = meanOfPresent(acc[label].retail)
		summaries[label].MeanFoodService = meanOfPresent(acc[label].foodService)
		sort.Strings(summaries[label].CountryIDs)
	}

	return summaries
}

func meanOfPresent(values []float64) float64 {
	clean := present(values)
	if len(clean) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range clean {
		sum += v
	}
	return sum / float64(len(clean))
}
