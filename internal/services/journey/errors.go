package journey

import "errors"

// Journey-related errors
var (
	ErrEmptyName      = errors.New("journey name cannot be empty")
	ErrEmptyStepTitle = errors.New("step title cannot be empty")
)
