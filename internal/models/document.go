package models

// Document is the import/export shape: one JSON object carrying all
// three collections. Journeys and issues are required on import,
// releases are optional.
type Document struct {
	Journeys []*Journey `json:"journeys"`
	Issues   []*Issue   `json:"issues"`
	Releases []*Release `json:"releases,omitempty"`
}
