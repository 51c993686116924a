// Package kernel contains shared value objects used across the domain model:
//
//   - UUID: identity for persisted aggregates, wrapping github.com/google/uuid
//   - Money: cent-denominated monetary amounts with exact arithmetic
//   - GeoPoint: validated geographic coordinates for delivery addresses
//
// All value objects are immutable and must be created through their
// constructor functions. Zero values fail Validate, which repositories and
// aggregates rely on when rehydrating state from storage.
package kernel
