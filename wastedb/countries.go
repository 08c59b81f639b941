package wastedb

import (
	"context"
	"database/sql"
)

// Queries provides read and write access to the cached dataset
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const countryColumns = `country_id, name, region, confidence,
	combined_kg_per_capita, household_kg_per_capita,
	retail_kg_per_capita, food_service_kg_per_capita,
	household_tonnes, retail_tonnes, food_service_tonnes, cluster`

func scanCountry(scanner interface{ Scan(...any) error }) (Country, error) {
	var c Country
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Region, &c.Confidence,
		&c.CombinedKgPerCapita, &c.HouseholdKgPerCap,
		&c.RetailKgPerCap, &c.FoodServiceKgPerCap,
		&c.HouseholdTonnes, &c.RetailTonnes, &c.FoodServiceTonnes,
		&c.Cluster,
	)
	return c, err
}

func (q *Queries) collectCountries(rows *sql.Rows) ([]Country, error) {
	defer rows.Close() // nolint:errcheck

	var countries []Country
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}

	return countries, rows.Err()
}

// ListCountries retrieves every cached country ordered by name
func (q *Queries) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+countryColumns+` FROM countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return q.collectCountries(rows)
}

// GetCountry retrieves a single country by ID. It returns sql.ErrNoRows when
// the ID is unknown.
func (q *Queries) GetCountry(ctx context.Context, id string) (Country, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE country_id = ?`, id)
	return scanCountry(row)
}

// ListCountriesByRegion retrieves the cached countries in a region
func (q *Queries) ListCountriesByRegion(ctx context.Context, region string) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE region = ? ORDER BY name`, region)
	if err != nil {
		return nil, err
	}
	return q.collectCountries(rows)
}

// ListCountriesByCluster retrieves the cached countries carrying a cluster label
func (q *Queries) ListCountriesByCluster(ctx context.Context, label int) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE cluster = ? ORDER BY name`, label)
	if err != nil {
		return nil, err
	}
	return q.collectCountries(rows)
}

// GetCountriesWithinRange retrieves countries whose combined estimate falls
// in [minCombined, maxCombined], ordered by the estimate.
func (q *Queries) GetCountriesWithinRange(ctx context.Context, minCombined, maxCombined float64) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+countryColumns+` FROM countries
		 WHERE combined_kg_per_capita BETWEEN ? AND ?
		 ORDER BY combined_kg_per_capita`, minCombined, maxCombined)
	if err != nil {
		return nil, err
	}
	return q.collectCountries(rows)
}

// CountCountries returns the number of cached countries
func (q *Queries) CountCountries(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM countries`).Scan(&count)
	return count, err
}

// UpdateClusterLabels applies a fresh set of cluster labels. Countries absent
// from the map are reset to the unassigned label.
func (q *Queries) UpdateClusterLabels(ctx context.Context, labels map[string]int) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE countries SET cluster = -1`); err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `UPDATE countries SET cluster = ? WHERE country_id = ?`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}
	defer stmt.Close() // nolint:errcheck

	for id, label := range labels {
		if _, err := stmt.ExecContext(ctx, label, id); err != nil {
			tx.Rollback() // nolint:errcheck
			return err
		}
	}

	return tx.Commit()
}
