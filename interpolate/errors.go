package interpolate

import "errors"

// ErrUnknownSpace is returned by ParseSpace for an unsupported space name.
var ErrUnknownSpace = errors.New("interpolate: unknown color space")
