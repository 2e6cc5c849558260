package release

import "errors"

// Release-related errors
var (
	ErrEmptyName = errors.New("release name cannot be empty")
)
