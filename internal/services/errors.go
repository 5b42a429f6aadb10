package services

import "errors"

// Service-level error taxonomy. Handlers map these to HTTP statuses:
// Unauthorized 401, Forbidden 403, NotFound 404, InvalidInput/Conflict 400.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
