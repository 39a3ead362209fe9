package errors

import "errors"

// ErrNotFound signals that no record exists for the requested identifier.
var ErrNotFound = errors.New("not found")
