package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that the store rejected data it was asked to persist
// (constraint violation, malformed value).
var ErrValidation = errors.New("validation error")
