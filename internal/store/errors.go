// Package store owns the in-memory collection of house listings. The
// sentinel values defined here let handlers distinguish between the
// different failure scenarios a store operation can produce. For
// example, ErrHouseNotFound indicates that no listing matches the
// requested identifier, while ErrValidation signals that the caller
// supplied an incomplete or malformed payload.
package store

import "errors"

// ErrHouseNotFound is returned when a lookup or mutation references a
// listing id that does not exist in the store (including ids that were
// deleted earlier; deletion is final). Handlers should translate this
// into an HTTP 404 response.
var ErrHouseNotFound = errors.New("house not found")

// ErrValidation is returned when the input for a create or image
// operation is missing required data or is out of range. It is always
// wrapped with a human-readable message describing the failing field,
// so callers should match it with errors.Is. Handlers should translate
// this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")
