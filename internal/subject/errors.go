package subject

import "errors"

var (
	// ErrEmptyName rejects adding a subject whose name is empty or
	// whitespace-only.
	ErrEmptyName = errors.New("subject name must not be empty")

	// ErrNotFound signals an operation referencing an unknown subject.
	ErrNotFound = errors.New("subject not found")

	// ErrInvalidMinutes rejects negative minute values at the engine
	// boundary.
	ErrInvalidMinutes = errors.New("minutes must not be negative")
)
