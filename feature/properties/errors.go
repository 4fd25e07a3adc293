package properties

import "errors"

var (
	// ErrDefaultCategoryMissing is returned by the import pass when the
	// seeded landing category is absent from the catalog.
	ErrDefaultCategoryMissing = errors.New(`the "default" category was not found in the catalog`)

	// ErrPersistence wraps catalog write failures during a pass.
	ErrPersistence = errors.New("failed to persist property")

	// ErrRollback marks a compensating catalog write that itself failed,
	// leaving the file and the catalog inconsistent.
	ErrRollback = errors.New("catalog rollback failed")

	// ErrNotFound is returned by id-addressed operations for absent records.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when creating a record whose key is taken.
	ErrDuplicateKey = errors.New("key already exists")
)
