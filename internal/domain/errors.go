package domain

import "errors"

// Sentinel errors services return so handlers can map them to HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoConversations    = errors.New("no conversations to summarize")
	ErrGenerationFailed   = errors.New("generation service failed")
)
