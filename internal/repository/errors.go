// Package repository defines data access for seats and seat notes.
// Sentinel errors declared here let handlers distinguish failure modes
// without inspecting driver-level error types.
package repository

import "errors"

// ErrSeatNotFound is returned when no seat matches the composite key
// (aircraft model, seat number). Handlers translate this into 404.
var ErrSeatNotFound = errors.New("seat not found")

// ErrNoteNotFound is returned when a note lookup or mutation targets an
// id with no backing row. Handlers translate this into 404.
var ErrNoteNotFound = errors.New("note not found")
