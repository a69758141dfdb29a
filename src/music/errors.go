package music

import "errors"

var (
	// ErrTrackNotFound is returned when a referenced track does not exist.
	ErrTrackNotFound = errors.New("track not found")
	// ErrDuplicatePlay is returned by the store when a play event for the
	// same (account, track) pair already exists. Callers treat it as
	// normal control flow, not a failure.
	ErrDuplicatePlay = errors.New("play event already recorded")
	// ErrEmptyQuery is returned when a search is attempted with a blank query.
	ErrEmptyQuery = errors.New("search query cannot be empty")
)
