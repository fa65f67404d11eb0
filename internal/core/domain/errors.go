package domain

import "errors"

// Validation
var (
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid id format")
)

// Authentication
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("passwords does not match")
	ErrHashingFailure     = errors.New("password was not hashed successfully")
)

// Lookups
var (
	ErrUserNotFound     = errors.New("email not found")
	ErrPaletteNotFound  = errors.New("palette not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Conflicts
var (
	ErrUserExists        = errors.New("user already exists")
	ErrDuplicateCategory = errors.New("category already exists")
)
