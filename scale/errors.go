// SPDX-License-Identifier: MIT
// Package scale: sentinel error set.
// Every constructor and setter returns one of these (possibly wrapped with
// context through fmt.Errorf("...: %w", ErrX)); tests match with errors.Is.
// Per-value coercion failures are never errors: they resolve to the scale's
// unknown value.

package scale

import "errors"

var (
	// ErrDomainTooShort is returned when a continuous scale receives fewer
	// than two domain values.
	ErrDomainTooShort = errors.New("scale: domain needs at least two values")

	// ErrDomainRangeMismatch is returned when a piecewise scale's domain and
	// range have different lengths.
	ErrDomainRangeMismatch = errors.New("scale: domain and range lengths differ")

	// ErrBadDomain is returned when a domain value cannot be coerced to the
	// scale's input type.
	ErrBadDomain = errors.New("scale: domain value is not coercible")

	// ErrBadRange is returned when a range value cannot be coerced to the
	// scale's output type.
	ErrBadRange = errors.New("scale: range value is not coercible")

	// ErrInvalidRange is returned for a band or point range with zero or
	// non-finite span.
	ErrInvalidRange = errors.New("scale: range span must be finite and non-zero")

	// ErrEmptyRange is returned when a discretizing scale gets no range values.
	ErrEmptyRange = errors.New("scale: range is empty")

	// ErrThresholdLength is returned when a threshold domain is not exactly
	// one shorter than its range.
	ErrThresholdLength = errors.New("scale: threshold domain must be one shorter than range")

	// ErrNotAscending is returned when threshold boundaries are not strictly
	// ascending.
	ErrNotAscending = errors.New("scale: threshold domain is not strictly ascending")

	// ErrUnknownKind is returned by Make for an unregistered kind name.
	ErrUnknownKind = errors.New("scale: unknown kind")

	// ErrBadOption is returned by Make when an option does not fit the
	// requested kind, where the typed constructors would panic.
	ErrBadOption = errors.New("scale: option does not fit the scale")
)

// ErrDomainLength is returned when a sequential (two values) or diverging
// (three values) domain has the wrong number of stops.
var ErrDomainLength = errors.New("scale: domain has the wrong number of stops")
