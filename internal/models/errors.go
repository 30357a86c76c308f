package models

import "errors"

// Domain errors surfaced by the stores and the token service. Handlers map
// these to HTTP status codes at the boundary; nothing below the handler layer
// knows about HTTP.
var (
	ErrDuplicateEmail     = errors.New("user with email already exists")
	ErrDuplicatePlayer    = errors.New("player with that name already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAuthRequired       = errors.New("authentication required")
	ErrNotOwner           = errors.New("not the owner of this resource")
	ErrUserNotFound       = errors.New("user not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
