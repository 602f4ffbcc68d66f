// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotAnInteger is returned by the parse helpers when a value is present
// but cannot be interpreted as an integer.
var ErrNotAnInteger = errors.New("not an integer")

// ParseOptionalInt parses an optional query parameter. It returns
// (nil, nil) for an empty string, a pointer to the parsed value on success,
// and ErrNotAnInteger for anything unparseable. Unlike a defaulting parser,
// malformed input is an error: the API contract rejects it rather than
// silently substituting a default.
func ParseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, ErrNotAnInteger
	}
	return &n, nil
}

// ParseLimit parses an optional limit parameter, substituting def when the
// value is absent. Non-integer or non-positive values return an error.
func ParseLimit(s string, def int) (int, error) {
	p, err := ParseOptionalInt(s)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return def, nil
	}
	if *p <= 0 {
		return 0, errors.New("must be positive")
	}
	return *p, nil
}
