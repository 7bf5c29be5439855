package application

import "errors"

// ErrEmptyIdentifier signals the lookup was invoked without an identifier.
var ErrEmptyIdentifier = errors.New("order identifier is required")
