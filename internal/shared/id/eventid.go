// Package id generates identifiers for domain events.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewEventID returns a random UUIDv4 string. Event IDs are half of the
// notification dedupe key, so they must be unique across redeliveries of
// different events and stable across redeliveries of the same one.
func NewEventID() string {
	return uuid.NewString()
}

// ValidateEventID reports whether s is a well-formed UUID.
func ValidateEventID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid event id %q: %w", s, err)
	}
	return nil
}
