package github

import "errors"

var (
	// ErrNotFound marks an HTTP 404 from the API.
	ErrNotFound = errors.New("resource not found")
	// ErrDecode marks a contents payload that could not be decoded to text.
	ErrDecode = errors.New("content decode failed")
)
