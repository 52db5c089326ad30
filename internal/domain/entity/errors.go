package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("entity not found")

	// ErrUpstreamUnavailable indicates that a third-party API could not be
	// reached or answered with something other than a well-formed success
	// envelope (network error, non-2xx status, malformed JSON, open circuit).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// UpstreamError is returned when a third-party API answered well-formed JSON
// whose status field reports a failure. Message is the upstream-provided
// message and may be empty.
type UpstreamError struct {
	Provider string
	Status   string
	Message  string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s upstream reported status %s", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s upstream reported status %s: %s", e.Provider, e.Status, e.Message)
}

// ValidationError represents a validation error with detailed field information.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
