package wastedb

import "database/sql"

// Country is one cleaned dataset row as stored in SQLite. Sector estimates
// are nullable because low-confidence countries only publish the combined
// figure.
type Country struct {
	ID                  string          // country_id
	Name                string          // name
	Region              string          // region
	Confidence          string          // confidence
	CombinedKgPerCapita float64         // combined_kg_per_capita
	HouseholdKgPerCap   sql.NullFloat64 // household_kg_per_capita
	RetailKgPerCap      sql.NullFloat64 // retail_kg_per_capita
	FoodServiceKgPerCap sql.NullFloat64 // food_service_kg_per_capita
	HouseholdTonnes     sql.NullFloat64 // household_tonnes
	RetailTonnes        sql.NullFloat64 // retail_tonnes
	FoodServiceTonnes   sql.NullFloat64 // food_service_tonnes
	Cluster             int64           // cluster (-1 when unassigned)
}

// ProblemReport is a stored data-quality report about a country's estimates
type ProblemReport struct {
	ID          string // report_id (uuid)
	CountryID   string // country_id
	Code        string // code
	UserComment string // user_comment
	CreatedAt   int64  // created_at (unix millis)
}
