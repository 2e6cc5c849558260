package dataio

import "errors"

// ErrMalformedImport marks a document missing the required top-level
// keys (or unparsable JSON). The import aborts with no side effects and
// the message is shown to the user.
var ErrMalformedImport = errors.New("invalid import document")
