package config

import "errors"

// ErrInvalidValue indicates that an environment variable is set to a value
// that cannot be parsed.
var ErrInvalidValue = errors.New("invalid environment value")
