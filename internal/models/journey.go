package models

// Step is an ordered phase inside a journey and a drop target for issues.
// Steps never exist outside their parent journey.
type Step struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	JourneyID string `json:"journeyId"`
}

// Journey is a board column group: an ordered sequence of steps.
type Journey struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
	Order *int   `json:"order,omitempty"`
}

// OrderValue returns the sort order, treating a missing order as 0.
func (j *Journey) OrderValue() int {
	if j.Order == nil {
		return 0
	}
	return *j.Order
}

// Clone returns a deep copy of the journey including its steps.
func (j *Journey) Clone() *Journey {
	c := *j
	if j.Steps != nil {
		c.Steps = append([]Step(nil), j.Steps...)
	}
	if j.Order != nil {
		v := *j.Order
		c.Order = &v
	}
	return &c
}
