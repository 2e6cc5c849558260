package models

// Release groups issues independently of their journey/step placement.
type Release struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Clone returns a copy of the release.
func (r *Release) Clone() *Release {
	c := *r
	return &c
}
