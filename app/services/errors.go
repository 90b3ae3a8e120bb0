package services

import "errors"

var (
	// ErrNotFound signals that no record has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrConflict signals that deleting a user would orphan posts
	// referencing it.
	ErrConflict = errors.New("user has associated posts")

	// ErrInvalidReference signals that a post names an author that
	// does not exist.
	ErrInvalidReference = errors.New("author not found")
)
