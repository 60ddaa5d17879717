package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPostNotFound indicates a route referenced a post that is not loaded.
	ErrPostNotFound = errors.New("post not found")
)
