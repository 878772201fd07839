package site

import "errors"

// Validation errors. Returned errors wrap one of these and can be
// classified with errors.Is.
var (
	ErrInvalidColor  = errors.New("invalid hex color format")
	ErrInvalidFormat = errors.New("invalid format")
	ErrEmptyFolder   = errors.New("folder name cannot be empty")
)
