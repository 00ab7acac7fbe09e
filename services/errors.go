package services

import "errors"

// Sentinel errors returned by the learning workflow. Controllers map
// these onto HTTP statuses at the request boundary.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("conflicting state")
	ErrForbidden  = errors.New("operation not allowed")
	ErrValidation = errors.New("invalid input")
)
