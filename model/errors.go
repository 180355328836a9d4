package model

import "errors"

// Sentinel errors shared across usecases and controllers. Wrap with
// fmt.Errorf("%w: ...") to add context; controllers match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream failure")
)
