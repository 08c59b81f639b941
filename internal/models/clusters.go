package models

// ClusterSummary describes one k-means cluster of countries.
// Labels are ordered by ascending mean combined waste, so cluster 0 is
// always the lowest-waste group.
type ClusterSummary struct {
	Label           int       `json:"label"`
	Size            int       `json:"size"`
	MeanCombined    float64   `json:"meanCombined"`
	MeanHousehold   float64   `json:"meanHousehold"`
	MeanRetail      float64   `json:"meanRetail"`
	MeanFoodService float64   `json:"meanFoodService"`
	CountryIDs      []string  `json:"countryIds"`
	Centroid        []float64 `json:"centroid"`
}

// ClusterData is the clusters endpoint payload: the summaries plus the
// parameters the clustering ran with.
type ClusterData struct {
	K        int              `json:"k"`
	Features []string         `json:"features"`
	Clusters []ClusterSummary `json:"clusters"`
}
