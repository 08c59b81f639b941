package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Countries []CountryReference `json:"countries"`
	Regions   []string           `json:"regions"`
	Clusters  []interface{}      `json:"clusters"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Countries: []CountryReference{},
		Regions:   []string{},
		Clusters:  []interface{}{},
	}
}
