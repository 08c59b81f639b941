package wastedb

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewatch.io/internal/appconf"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(NewConfig(":memory:", appconf.Test, false), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func testCountries() []Country {
	return []Country{
		{
			ID: "austria", Name: "Austria", Region: "Western Europe",
			Confidence: "High Confidence", CombinedKgPerCapita: 79,
			HouseholdKgPerCap: nullFloat(39), RetailKgPerCap: nullFloat(9),
			FoodServiceKgPerCap: nullFloat(31), HouseholdTonnes: nullFloat(350000),
			Cluster: 1,
		},
		{
			ID: "kenya", Name: "Kenya", Region: "Sub-Saharan Africa",
			Confidence: "Medium Confidence", CombinedKgPerCapita: 99,
			HouseholdKgPerCap: nullFloat(99),
			Cluster:           2,
		},
		{
			ID: "japan", Name: "Japan", Region: "Eastern Asia",
			Confidence: "High Confidence", CombinedKgPerCapita: 64,
			HouseholdKgPerCap: nullFloat(64), RetailKgPerCap: nullFloat(16),
			FoodServiceKgPerCap: nullFloat(26),
			Cluster:             0,
		},
	}
}

func TestTestEnvironmentRequiresInMemoryDB(t *testing.T) {
	_, err := NewClient(NewConfig("/tmp/waste.db", appconf.Test, false), slog.Default())
	assert.Error(t, err)
}

func TestReplaceDatasetAndListCountries(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	countries, err := client.Queries.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 3)

	// Ordered by name.
	assert.Equal(t, "austria", countries[0].ID)
	assert.Equal(t, "japan", countries[1].ID)
	assert.Equal(t, "kenya", countries[2].ID)

	count, err := client.Queries.CountCountries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestGetCountry(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	country, err := client.Queries.GetCountry(ctx, "kenya")
	require.NoError(t, err)
	assert.Equal(t, "Kenya", country.Name)
	assert.Equal(t, 99.0, country.CombinedKgPerCapita)
	assert.False(t, country.RetailKgPerCap.Valid)
	assert.EqualValues(t, 2, country.Cluster)

	_, err = client.Queries.GetCountry(ctx, "atlantis")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListCountriesByRegion(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	countries, err := client.Queries.ListCountriesByRegion(ctx, "Eastern Asia")
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "japan", countries[0].ID)

	countries, err = client.Queries.ListCountriesByRegion(ctx, "Oceania")
	require.NoError(t, err)
	assert.Empty(t, countries)
}

func TestGetCountriesWithinRange(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	countries, err := client.Queries.GetCountriesWithinRange(ctx, 70, 100)
	require.NoError(t, err)
	require.Len(t, countries, 2)

	// Ordered by combined estimate.
	assert.Equal(t, "austria", countries[0].ID)
	assert.Equal(t, "kenya", countries[1].ID)
}

func TestReplaceDatasetOverwrites(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	replacement := []Country{{
		ID: "malta", Name: "Malta", Region: "Southern Europe",
		CombinedKgPerCapita: 76, Cluster: -1,
	}}
	require.NoError(t, client.ReplaceDataset(ctx, replacement))

	countries, err := client.Queries.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "malta", countries[0].ID)
}

func TestReplaceDatasetPreservesProblemReports(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	report := ProblemReport{
		ID: "3e7c9a30-0000-4000-8000-000000000001", CountryID: "kenya",
		Code: "value_looks_wrong", UserComment: "figure looks stale",
		CreatedAt: 1756000000000,
	}
	require.NoError(t, client.Queries.InsertProblemReport(ctx, report))

	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	count, err := client.Queries.CountProblemReports(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUpdateClusterLabels(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	labels := map[string]int{"austria": 0, "japan": 1}
	require.NoError(t, client.Queries.UpdateClusterLabels(ctx, labels))

	austria, err := client.Queries.GetCountry(ctx, "austria")
	require.NoError(t, err)
	assert.EqualValues(t, 0, austria.Cluster)

	// Countries absent from the map are reset to unassigned.
	kenya, err := client.Queries.GetCountry(ctx, "kenya")
	require.NoError(t, err)
	assert.EqualValues(t, -1, kenya.Cluster)

	clustered, err := client.Queries.ListCountriesByCluster(ctx, 1)
	require.NoError(t, err)
	require.Len(t, clustered, 1)
	assert.Equal(t, "japan", clustered[0].ID)
}

func TestProblemReportsForCountry(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.ReplaceDataset(ctx, testCountries()))

	first := ProblemReport{
		ID: "3e7c9a30-0000-4000-8000-000000000010", CountryID: "japan",
		Code: "region_incorrect", CreatedAt: 1756000000000,
	}
	second := ProblemReport{
		ID: "3e7c9a30-0000-4000-8000-000000000011", CountryID: "japan",
		Code: "other", UserComment: "duplicate of an older row", CreatedAt: 1756000001000,
	}
	require.NoError(t, client.Queries.InsertProblemReport(ctx, first))
	require.NoError(t, client.Queries.InsertProblemReport(ctx, second))

	reports, err := client.Queries.ListProblemReportsForCountry(ctx, "japan")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Newest first.
	assert.Equal(t, second.ID, reports[0].ID)
	assert.Equal(t, first.ID, reports[1].ID)

	reports, err = client.Queries.ListProblemReportsForCountry(ctx, "austria")
	require.NoError(t, err)
	assert.Empty(t, reports)
}
