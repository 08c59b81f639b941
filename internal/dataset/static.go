package dataset

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"wastewatch.io/internal/analysis"
	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
)

// Column headers as they appear in the UNEP Food Waste Index export.
const (
	colCountry           = "Country"
	colRegion            = "Region"
	colConfidence        = "Confidence in estimate"
	colCombined          = "combined figures (kg/capita/year)"
	colHouseholdKg       = "Household estimate (kg/capita/year)"
	colRetailKg          = "Retail estimate (kg/capita/year)"
	colFoodServiceKg     = "Food service estimate (kg/capita/year)"
	colHouseholdTonnes   = "Household estimate (tonnes/year)"
	colRetailTonnes      = "Retail estimate (tonnes/year)"
	colFoodServiceTonnes = "Food service estimate (tonnes/year)"
)

// loadResult is a fully cleaned dataset ready to hand to the Manager.
type loadResult struct {
	Countries   []models.Country
	Metrics     []analysis.CountryMetrics
	Warnings    []string
	RowsDropped int
}

func rawDatasetBytes(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local dataset file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading dataset: %w", err)
		}
		defer resp.Body.Close() // nolint

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error downloading dataset: unexpected status %s", resp.Status)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading dataset response: %w", err)
		}
	}
	return b, nil
}

// loadDataset loads and cleans the waste dataset from either a URL or a
// local file.
func loadDataset(source string, isLocalFile bool) (*loadResult, error) {
	b, err := rawDatasetBytes(source, isLocalFile)
	if err != nil {
		return nil, err
	}
	return parseDataset(b)
}

// parseDataset turns raw CSV bytes into cleaned rows. Numeric fields that
// fail to parse become missing values; rows without a country name or a
// combined figure are dropped. Negative estimates are data errors: a
// negative combined figure drops the row, negative sector estimates become
// missing.
func parseDataset(b []byte) (*loadResult, error) {
	df := dataframe.ReadCSV(bytes.NewReader(b),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("error parsing dataset CSV: %w", df.Error())
	}

	available := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		available[name] = true
	}
	for _, required := range []string{colCountry, colCombined} {
		if !available[required] {
			return nil, fmt.Errorf("dataset is missing required column %q", required)
		}
	}

	column := func(name string) []string {
		if !available[name] {
			return nil
		}
		return df.Col(name).Records()
	}

	names := column(colCountry)
	regions := column(colRegion)
	confidences := column(colConfidence)
	combined := column(colCombined)
	householdKg := column(colHouseholdKg)
	retailKg := column(colRetailKg)
	foodServiceKg := column(colFoodServiceKg)
	householdTonnes := column(colHouseholdTonnes)
	retailTonnes := column(colRetailTonnes)
	foodServiceTonnes := column(colFoodServiceTonnes)

	result := &loadResult{}
	seen := make(map[string]bool, df.Nrow())

	for i := 0; i < df.Nrow(); i++ {
		name := strings.TrimSpace(cellAt(names, i))
		combinedValue := coerceNumeric(cellAt(combined, i))

		if name == "" || math.IsNaN(combinedValue) {
			result.RowsDropped++
			continue
		}

		if combinedValue < 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("negative combined figure %g for %q at row %d, dropping row", combinedValue, name, i+1))
			result.RowsDropped++
			continue
		}

		id := utils.CountryID(name)
		if seen[id] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate country %q at row %d, keeping first occurrence", name, i+1))
			result.RowsDropped++
			continue
		}
		seen[id] = true

		nonNegative := func(column string, v float64) float64 {
			if v < 0 {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("negative %s for %q at row %d, treating as missing", column, name, i+1))
				return math.NaN()
			}
			return v
		}

		metrics := analysis.CountryMetrics{
			ID:                id,
			Region:            strings.TrimSpace(cellAt(regions, i)),
			Combined:          combinedValue,
			Household:         nonNegative(colHouseholdKg, coerceNumeric(cellAt(householdKg, i))),
			Retail:            nonNegative(colRetailKg, coerceNumeric(cellAt(retailKg, i))),
			FoodService:       nonNegative(colFoodServiceKg, coerceNumeric(cellAt(foodServiceKg, i))),
			HouseholdTonnes:   nonNegative(colHouseholdTonnes, coerceNumeric(cellAt(householdTonnes, i))),
			RetailTonnes:      nonNegative(colRetailTonnes, coerceNumeric(cellAt(retailTonnes, i))),
			FoodServiceTonnes: nonNegative(colFoodServiceTonnes, coerceNumeric(cellAt(foodServiceTonnes, i))),
		}
		result.Metrics = append(result.Metrics, metrics)

		result.Countries = append(result.Countries, models.NewCountry(
			id, name, metrics.Region, strings.TrimSpace(cellAt(confidences, i)),
			combinedValue,
			optional(metrics.Household), optional(metrics.Retail), optional(metrics.FoodService),
			optional(metrics.HouseholdTonnes), optional(metrics.RetailTonnes), optional(metrics.FoodServiceTonnes),
			-1,
		))
	}

	return result, nil
}

func cellAt(records []string, i int) string {
	if records == nil || i >= len(records) {
		return ""
	}
	return records[i]
}

// coerceNumeric parses a raw CSV cell, treating anything unparseable as a
// missing value. The source data uses thousands separators in the tonnage
// columns.
func coerceNumeric(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" || strings.EqualFold(raw, "na") || strings.EqualFold(raw, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
