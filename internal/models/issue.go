package models

// Issue represents a single unit of work on the story map.
// An issue may sit on one step, belong to one release, both, or neither.
type Issue struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StepID      *string  `json:"stepId,omitempty"`
	ReleaseID   *string  `json:"releaseId,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Order       *int     `json:"order,omitempty"`
}

// Unassigned reports whether the issue sits in the unassigned pool,
// i.e. it has neither a step nor a release.
func (i *Issue) Unassigned() bool {
	return i.StepID == nil && i.ReleaseID == nil
}

// OrderValue returns the sort order, treating a missing order as 0.
func (i *Issue) OrderValue() int {
	if i.Order == nil {
		return 0
	}
	return *i.Order
}

// Clone returns a deep copy so callers can mutate without touching
// the store's published snapshot.
func (i *Issue) Clone() *Issue {
	c := *i
	if i.StepID != nil {
		v := *i.StepID
		c.StepID = &v
	}
	if i.ReleaseID != nil {
		v := *i.ReleaseID
		c.ReleaseID = &v
	}
	if i.Labels != nil {
		c.Labels = append([]string(nil), i.Labels...)
	}
	if i.Order != nil {
		v := *i.Order
		c.Order = &v
	}
	return &c
}
