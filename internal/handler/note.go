package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aerovane/seat-viewer/internal/queue"
	"github.com/aerovane/seat-viewer/internal/repository"
	"github.com/aerovane/seat-viewer/internal/validation"
)

// NoteStore is the note persistence surface the note handlers depend
// on. *repository.SeatNoteRepo satisfies it.
type NoteStore interface {
	ListForSeat(ctx context.Context, model, seatNumber string) ([]repository.SeatNote, error)
	Create(ctx context.Context, model, seatNumber, text string) (*repository.SeatNote, error)
	Update(ctx context.Context, id int64, text string) (*repository.SeatNote, error)
	Delete(ctx context.Context, id int64) error
}

// NotePublisher publishes a note lifecycle event to the message broker.
// Failures are logged by the publisher and ignored here so the request
// flow is never interrupted.
type NotePublisher func(ctx context.Context, ev queue.NoteEvent) error

// NoteRequest is the JSON body for note create and update.
type NoteRequest struct {
	Text string `json:"text"`
}

// NoteResponse is the JSON projection of a seat note.
type NoteResponse struct {
	ID            int64     `json:"id"`
	AircraftModel string    `json:"aircraftModel"`
	SeatNumber    string    `json:"seatNumber"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

const noteTextMessage = "Note text must be between 1 and 500 characters"

// NoteHandler serves the seat note CRUD endpoints.
type NoteHandler struct {
	Notes   NoteStore
	Publish NotePublisher // optional; nil disables event publishing
}

// NewNoteHandler constructs a NoteHandler. publish may be nil when no
// broker is configured.
func NewNoteHandler(notes NoteStore, publish NotePublisher) *NoteHandler {
	return &NoteHandler{Notes: notes, Publish: publish}
}

// CreateNote handles POST /seats/:model/:seat/notes. Validation runs
// before any store access; a missing seat surfaces as 404. On success
// it responds 201 with a Location header for the new note.
func (h *NoteHandler) CreateNote(c echo.Context) error {
	model := c.Param("model")
	seatNumber := c.Param("seat")

	if !validation.IsValidSeatNumber(seatNumber) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid seat number format: %s", seatNumber),
		})
	}

	var body NoteRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !validation.IsValidNoteText(body.Text) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": noteTextMessage})
	}

	note, err := h.Notes.Create(c.Request().Context(), model, seatNumber, body.Text)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "seat not found"})
		}
		return err
	}

	h.publishEvent(c, queue.NoteCreated, note)

	c.Response().Header().Set(echo.HeaderLocation,
		fmt.Sprintf("/seats/%s/%s/notes/%d", model, seatNumber, note.ID))
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// ListNotes handles GET /seats/:model/:seat/notes, most recently
// updated first. A seat with no notes returns an empty array.
func (h *NoteHandler) ListNotes(c echo.Context) error {
	model := c.Param("model")
	seatNumber := c.Param("seat")

	if !validation.IsValidSeatNumber(seatNumber) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid seat number format: %s", seatNumber),
		})
	}

	notes, err := h.Notes.ListForSeat(c.Request().Context(), model, seatNumber)
	if err != nil {
		return err
	}

	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateNote handles PUT /notes/:noteId. Last-write-wins: the text is
// replaced and updated_at refreshed with no conflict detection.
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid note id"})
	}

	var body NoteRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !validation.IsValidNoteText(body.Text) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": noteTextMessage})
	}

	note, err := h.Notes.Update(c.Request().Context(), id, body.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
		}
		return err
	}

	h.publishEvent(c, queue.NoteUpdated, note)

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// DeleteNote handles DELETE /notes/:noteId. Deleting an absent note
// (including a second delete of the same id) yields 404.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid note id"})
	}

	if err := h.Notes.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "note not found"})
		}
		return err
	}

	h.publishEvent(c, queue.NoteDeleted, &repository.SeatNote{ID: id})

	return c.NoContent(http.StatusNoContent)
}

// publishEvent sends a note lifecycle event, ignoring publish failures.
func (h *NoteHandler) publishEvent(c echo.Context, action string, note *repository.SeatNote) {
	if h.Publish == nil {
		return
	}
	_ = h.Publish(c.Request().Context(), queue.NewNoteEvent(action, note.ID,
		note.AircraftModel, note.SeatNumber))
}

func toNoteResponse(n *repository.SeatNote) NoteResponse {
	return NoteResponse{
		ID:            n.ID,
		AircraftModel: n.AircraftModel,
		SeatNumber:    n.SeatNumber,
		Text:          n.Text,
		CreatedAt:     n.CreatedAt.UTC(),
		UpdatedAt:     n.UpdatedAt.UTC(),
	}
}
