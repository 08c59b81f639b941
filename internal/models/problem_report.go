package models

// ProblemReport is a user-submitted data-quality report about a country's
// waste estimates.
type ProblemReport struct {
	ID          string `json:"id"`
	CountryID   string `json:"countryId"`
	Code        string `json:"code"`
	UserComment string `json:"userComment"`
	CreatedAt   int64  `json:"createdAt"`
}

// Valid problem report codes, mirroring the kinds of issues the upstream
// dataset tracks.
const (
	ProblemCodeValueLooksWrong  = "value_looks_wrong"
	ProblemCodeCountryMissing   = "country_missing"
	ProblemCodeRegionIncorrect  = "region_incorrect"
	ProblemCodeDuplicateCountry = "duplicate_country"
	ProblemCodeOther            = "other"
)

// IsValidProblemCode reports whether code is one of the accepted report codes.
func IsValidProblemCode(code string) bool {
	switch code {
	case ProblemCodeValueLooksWrong, ProblemCodeCountryMissing,
		ProblemCodeRegionIncorrect, ProblemCodeDuplicateCountry, ProblemCodeOther:
		return true
	}
	return false
}
