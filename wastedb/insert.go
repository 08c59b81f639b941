package wastedb

import (
	"context"
	"database/sql"
	"fmt"
)

// insertCountryBatch adds cleaned country rows within an existing transaction
func insertCountryBatch(ctx context.Context, tx *sql.Tx, countries []Country) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO countries (
			country_id, name, region, confidence,
			combined_kg_per_capita, household_kg_per_capita,
			retail_kg_per_capita, food_service_kg_per_capita,
			household_tonnes, retail_tonnes, food_service_tonnes, cluster
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, country := range countries {
		_, err := stmt.ExecContext(ctx,
			country.ID, country.Name, country.Region, country.Confidence,
			country.CombinedKgPerCapita, country.HouseholdKgPerCap,
			country.RetailKgPerCap, country.FoodServiceKgPerCap,
			country.HouseholdTonnes, country.RetailTonnes,
			country.FoodServiceTonnes, country.Cluster,
		)
		if err != nil {
			return fmt.Errorf("error inserting country %s: %w", country.ID, err)
		}
	}

	return nil
}
