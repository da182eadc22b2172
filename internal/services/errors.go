package services

import "errors"

// ErrCompanyNotFound is returned when no company row matches the requested id
var ErrCompanyNotFound = errors.New("company not found")

// ErrValidation represents a request that failed boundary validation
var ErrValidation = errors.New("validation error")

// ErrInvalidInput represents a request body that could not be decoded
var ErrInvalidInput = errors.New("invalid input")

// IsValidationError checks if an error is a validation error or invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error reports a missing company
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCompanyNotFound)
}
