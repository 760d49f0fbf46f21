package domain

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when an author, category, tag or section id does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrSlugConflict is returned by the store when a slug is already taken.
	ErrSlugConflict = errors.New("slug already taken")
)
