package domain

import "errors"

var (
	// ErrPostNotFound is returned when a post lookup matches nothing.
	ErrPostNotFound = errors.New("post not found")
)
