// Package kernel contains value objects shared by every aggregate in the
// pathlab domain model.
//
// The package includes:
//   - UUID: entity identity, wrapping github.com/google/uuid
//   - Price: a positive money amount stored as integer cents
//
// Both types are immutable, validated at construction, and safe for
// concurrent use. The zero value of each is invalid and is rejected by
// Validate, which lets aggregates detect fields that bypassed a
// constructor.
package kernel
