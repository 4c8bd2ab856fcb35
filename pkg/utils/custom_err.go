package utils

import "errors"

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrSessionNotFound     = errors.New("quiz session not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
	ErrAIUnavailable       = errors.New("recommendation client unavailable")
)
