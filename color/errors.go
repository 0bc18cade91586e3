package color

import "errors"

// ErrParse is returned when a string is not a recognised color specifier.
var ErrParse = errors.New("color: unrecognised color specifier")
