package shareclient

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExhausted    = errors.New("request rejected: limit exceeded")
	ErrNoSession    = errors.New("no access session, call access first")
)
