package services

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)
