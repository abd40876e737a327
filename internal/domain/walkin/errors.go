package walkin

import "errors"

var (
	ErrWalkInNotFound   = errors.New("walk-in not found")
	ErrAlreadyProcessed = errors.New("walk-in has already been converted or closed")
)
