// Package services defines the business logic for corpus statistics,
// document queries, and feedback. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrInvalidParameter is returned when caller-supplied input fails
	// validation (non-positive limit, malformed numeric filter, rating out
	// of range, missing required field). Methods wrap it with a descriptive
	// message; callers should test with errors.Is.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDocumentNotFound indicates that no document with the requested
	// ECLI identifier exists.
	ErrDocumentNotFound = errors.New("document not found")
)
