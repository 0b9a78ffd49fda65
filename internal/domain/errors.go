package domain

import "errors"

// Domain errors.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrTaskNotFound       = errors.New("task not found")
	ErrSeedUnreachable    = errors.New("seed source unreachable")
	ErrEmptyText          = errors.New("task text cannot be empty")
	ErrUnknownSeedSource  = errors.New("unknown seed source")
	ErrInvalidFilter      = errors.New("invalid filter")
)
