package mongodb

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found in the database")

	// ErrVersionConflict is returned when a versioned write lost the race
	// against a concurrent writer. Callers are expected to reload and retry.
	ErrVersionConflict = errors.New("document was modified by a concurrent write")
)
