package client

import "errors"

// Transport-level sentinels. Services match these with errors.Is to pick
// between failing an operation and falling back to the local cache.
var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrSessionExpired        = errors.New("session expired")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
