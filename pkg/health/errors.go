package health

import "errors"

var (
	// ErrCheckFailed marks a check that could not run.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout marks a check that outlived the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
