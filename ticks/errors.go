package ticks

import "errors"

var (
	// ErrEmptySample is returned by quantile helpers when no finite value is
	// available to select from.
	ErrEmptySample = errors.New("ticks: sample holds no finite values")

	// ErrBadProbability is returned when a quantile probability is NaN.
	ErrBadProbability = errors.New("ticks: probability must be a number")
)
