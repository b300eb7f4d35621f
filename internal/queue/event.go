// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Note lifecycle actions carried in NoteEvent.Action.
const (
	NoteCreated = "note.created"
	NoteUpdated = "note.updated"
	NoteDeleted = "note.deleted"
)

// NoteEvent is published after a successful note write. It carries
// enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type NoteEvent struct {
	EventID       string `json:"event_id"`
	Action        string `json:"action"`
	NoteID        int64  `json:"note_id"`
	AircraftModel string `json:"aircraft_model,omitempty"`
	SeatNumber    string `json:"seat_number,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}

// NewNoteEvent builds a NoteEvent with a fresh event id and the current
// UTC time.
func NewNoteEvent(action string, noteID int64, model, seatNumber string) NoteEvent {
	return NoteEvent{
		EventID:       uuid.NewString(),
		Action:        action,
		NoteID:        noteID,
		AircraftModel: model,
		SeatNumber:    seatNumber,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
