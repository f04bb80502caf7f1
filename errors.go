package anneal

import "errors"

// ErrInvalidConfig is returned by New for out-of-range or inconsistent
// configuration. It is the only error kind in this package: once a Schedule
// is constructed, calls never fail.
// Use errors.Is to check: errors.Is(err, anneal.ErrInvalidConfig)
var ErrInvalidConfig = errors.New("anneal: invalid schedule config")
