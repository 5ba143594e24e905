// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyPassword is returned when a password is missing.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooShort is returned when a password is shorter than the minimum.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyDescription is returned when a task description is missing or blank.
	ErrEmptyDescription = errors.New("task description cannot be empty")

	// ErrInvalidTaskID is returned when a task ID is not a positive integer.
	ErrInvalidTaskID = errors.New("task ID must be a positive integer")
)
