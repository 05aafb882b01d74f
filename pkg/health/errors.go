package health

import "errors"

var (
	// ErrCheckFailed wraps the error of a failing check.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for checks that did not finish in time.
	ErrCheckTimeout = errors.New("health: check timeout")
)
