package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"wastewatch.io/internal/dataset"
	"wastewatch.io/internal/models"
)

const (
	dashboardSheet = "Dashboard"
	countriesSheet = "Countries"
	rankingsSheet  = "Rankings"
	clustersSheet  = "Clusters"
)

// WriteWorkbook writes the dataset snapshot to an Excel workbook with
// dashboard, country, ranking and cluster sheets.
func WriteWorkbook(manager *dataset.Manager, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", dashboardSheet); err != nil {
		return err
	}

	writeDashboardSheet(f, manager.Summary())
	writeCountriesSheet(f, manager.GetCountries())
	writeRankingsSheet(f, manager.Rankings("highest", 0))
	writeClustersSheet(f, manager.Clusters())

	return f.SaveAs(path)
}

func writeDashboardSheet(f *excelize.File, summary models.SummaryStats) {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Countries", summary.CountryCount},
		{"Rows dropped during cleaning", summary.RowsDropped},
		{"Mean combined estimate (kg/capita/year)", summary.CombinedMean},
		{"Median combined estimate (kg/capita/year)", summary.CombinedMedian},
		{"Std dev combined estimate (kg/capita/year)", summary.CombinedStdDev},
		{"Lowest combined estimate (kg/capita/year)", summary.CombinedMin},
		{"Highest combined estimate (kg/capita/year)", summary.CombinedMax},
		{"Household total (tonnes/year)", summary.HouseholdTotal},
		{"Retail total (tonnes/year)", summary.RetailTotal},
		{"Food service total (tonnes/year)", summary.FoodServiceTotal},
		{"Last updated", time.UnixMilli(summary.LastUpdated).UTC().Format(time.RFC3339)},
	}

	for i, row := range rows {
		f.SetCellValue(dashboardSheet, fmt.Sprintf("A%d", i+1), row.label)
		f.SetCellValue(dashboardSheet, fmt.Sprintf("B%d", i+1), row.value)
	}
	f.SetColWidth(dashboardSheet, "A", "A", 42)
	f.SetColWidth(dashboardSheet, "B", "B", 22)

	regionHeaderRow := len(rows) + 2
	f.SetCellValue(dashboardSheet, fmt.Sprintf("A%d", regionHeaderRow), "Region")
	f.SetCellValue(dashboardSheet, fmt.Sprintf("B%d", regionHeaderRow), "Countries")
	f.SetCellValue(dashboardSheet, fmt.Sprintf("C%d", regionHeaderRow), "Mean combined (kg/capita/year)")

	for i, region := range summary.Regions {
		row := regionHeaderRow + 1 + i
		f.SetCellValue(dashboardSheet, fmt.Sprintf("A%d", row), region.Region)
		f.SetCellValue(dashboardSheet, fmt.Sprintf("B%d", row), region.CountryCount)
		f.SetCellValue(dashboardSheet, fmt.Sprintf("C%d", row), region.CombinedMean)
	}
}

func writeCountriesSheet(f *excelize.File, countries []models.Country) {
	f.NewSheet(countriesSheet)

	headers := []string{"ID", "Country", "Region", "Confidence",
		"Combined (kg/capita/year)", "Household (kg/capita/year)",
		"Retail (kg/capita/year)", "Food service (kg/capita/year)",
		"Household (tonnes/year)", "Retail (tonnes/year)",
		"Food service (tonnes/year)", "Cluster"}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(countriesSheet, cell, header)
		f.SetColWidth(countriesSheet, cell[:len(cell)-1], cell[:len(cell)-1], 22)
	}

	for i, country := range countries {
		row := i + 2
		f.SetCellValue(countriesSheet, fmt.Sprintf("A%d", row), country.ID)
		f.SetCellValue(countriesSheet, fmt.Sprintf("B%d", row), country.Name)
		f.SetCellValue(countriesSheet, fmt.Sprintf("C%d", row), country.Region)
		f.SetCellValue(countriesSheet, fmt.Sprintf("D%d", row), country.Confidence)
		f.SetCellValue(countriesSheet, fmt.Sprintf("E%d", row), country.CombinedKgPerCapita)
		setOptionalCell(f, countriesSheet, fmt.Sprintf("F%d", row), country.HouseholdKgPerCapita)
		setOptionalCell(f, countriesSheet, fmt.Sprintf("G%d", row), country.RetailKgPerCapita)
		setOptionalCell(f, countriesSheet, fmt.Sprintf("H%d", row), country.FoodServiceKgPerCapita)
		setOptionalCell(f, countriesSheet, fmt.Sprintf("I%d", row), country.HouseholdTonnes)
		setOptionalCell(f, countriesSheet, fmt.Sprintf("J%d", row), country.RetailTonnes)
		setOptionalCell(f, countriesSheet, fmt.Sprintf("K%d", row), country.FoodServiceTonnes)
		f.SetCellValue(countriesSheet, fmt.Sprintf("L%d", row), country.Cluster)
	}
}

func writeRankingsSheet(f *excelize.File, rankings []models.RankingEntry) {
	f.NewSheet(rankingsSheet)

	headers := []string{"Rank", "Country", "Region", "Combined (kg/capita/year)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(rankingsSheet, cell, header)
		f.SetColWidth(rankingsSheet, cell[:len(cell)-1], cell[:len(cell)-1], 24)
	}

	for i, entry := range rankings {
		row := i + 2
		f.SetCellValue(rankingsSheet, fmt.Sprintf("A%d", row), entry.Rank)
		f.SetCellValue(rankingsSheet, fmt.Sprintf("B%d", row), entry.Name)
		f.SetCellValue(rankingsSheet, fmt.Sprintf("C%d", row), entry.Region)
		f.SetCellValue(rankingsSheet, fmt.Sprintf("D%d", row), entry.CombinedKgPerCapita)
	}
}

func writeClustersSheet(f *excelize.File, clusterData models.ClusterData) {
	f.NewSheet(clustersSheet)

	f.SetCellValue(clustersSheet, "A1", fmt.Sprintf("K-means clustering, k=%d, features: %s",
		clusterData.K, strings.Join(clusterData.Features, ", ")))

	headers := []string{"Cluster", "Size", "Mean combined", "Mean household",
		"Mean retail", "Mean food service", "Countries"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(clustersSheet, cell, header)
		f.SetColWidth(clustersSheet, cell[:len(cell)-1], cell[:len(cell)-1], 18)
	}
	f.SetColWidth(clustersSheet, "G", "G", 60)

	for i, cluster := range clusterData.Clusters {
		row := i + 3
		f.SetCellValue(clustersSheet, fmt.Sprintf("A%d", row), cluster.Label)
		f.SetCellValue(clustersSheet, fmt.Sprintf("B%d", row), cluster.Size)
		f.SetCellValue(clustersSheet, fmt.Sprintf("C%d", row), cluster.MeanCombined)
		f.SetCellValue(clustersSheet, fmt.Sprintf("D%d", row), cluster.MeanHousehold)
		f.SetCellValue(clustersSheet, fmt.Sprintf("E%d", row), cluster.MeanRetail)
		f.SetCellValue(clustersSheet, fmt.Sprintf("F%d", row), cluster.MeanFoodService)
		f.SetCellValue(clustersSheet, fmt.Sprintf("G%d", row), strings.Join(cluster.CountryIDs, ", "))
	}
}

// setOptionalCell leaves the cell empty for missing sector estimates so the
// workbook reads like the source data, not like zeros.
func setOptionalCell(f *excelize.File, sheet, cell string, value *float64) {
	if value == nil {
		return
	}
	f.SetCellValue(sheet, cell, *value)
}
