package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/aerovane/seat-viewer/internal/validation"
)

// SeatNote is a public free-text annotation attached to a seat. Notes
// carry a surrogate integer id and reference their seat through the
// composite (AircraftModel, SeatNumber) key.
type SeatNote struct {
	ID            int64
	AircraftModel string
	SeatNumber    string
	Text          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// mysqlFKViolation is the server error number for a failed foreign key
// constraint on insert/update (ER_NO_REFERENCED_ROW_2).
const mysqlFKViolation = 1452

// SeatNoteRepo provides CRUD access to seat notes.
type SeatNoteRepo struct {
	db *sql.DB
}

// NewSeatNoteRepo constructs a SeatNoteRepo with the given DB handle.
func NewSeatNoteRepo(db *sql.DB) *SeatNoteRepo {
	return &SeatNoteRepo{db: db}
}

const noteColumns = `id, aircraft_model, seat_number, text, created_at, updated_at`

// ListForSeat returns all notes for a seat ordered by updated_at
// descending, most recently touched first. An unknown seat simply
// yields an empty slice.
func (r *SeatNoteRepo) ListForSeat(ctx context.Context, model, seatNumber string) ([]SeatNote, error) {
	const q = `SELECT ` + noteColumns + `
	           FROM seat_notes
	           WHERE aircraft_model = ? AND seat_number = ?
	           ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, q, model, seatNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SeatNote
	for rows.Next() {
		var n SeatNote
		if err := rows.Scan(&n.ID, &n.AircraftModel, &n.SeatNumber, &n.Text,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create sanitizes the text, stamps created_at = updated_at = now (UTC)
// and persists a new note. The seat is checked for existence first so a
// missing seat surfaces as ErrSeatNotFound rather than a driver error;
// the schema's foreign key remains as a backstop for the race between
// check and insert.
func (r *SeatNoteRepo) Create(ctx context.Context, model, seatNumber, text string) (*SeatNote, error) {
	const exists = `SELECT 1 FROM seats WHERE aircraft_model = ? AND seat_number = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, exists, model, seatNumber).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	note := &SeatNote{
		AircraftModel: model,
		SeatNumber:    seatNumber,
		Text:          validation.SanitizeNoteText(text),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	const q = `INSERT INTO seat_notes (aircraft_model, seat_number, text, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, note.AircraftModel, note.SeatNumber, note.Text,
		note.CreatedAt, note.UpdatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlFKViolation {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	note.ID = id
	return note, nil
}

// GetByID retrieves a single note. Returns ErrNoteNotFound when absent.
func (r *SeatNoteRepo) GetByID(ctx context.Context, id int64) (*SeatNote, error) {
	const q = `SELECT ` + noteColumns + ` FROM seat_notes WHERE id = ?`
	var n SeatNote
	err := r.db.QueryRowContext(ctx, q, id).Scan(&n.ID, &n.AircraftModel, &n.SeatNumber,
		&n.Text, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

// Update replaces a note's text and refreshes updated_at, leaving
// created_at untouched. Last-write-wins: there is no version check, so
// a concurrent writer is silently overwritten. Returns ErrNoteNotFound
// when the id has no backing row.
func (r *SeatNoteRepo) Update(ctx context.Context, id int64, text string) (*SeatNote, error) {
	note, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note.Text = validation.SanitizeNoteText(text)
	note.UpdatedAt = time.Now().UTC()

	const q = `UPDATE seat_notes SET text = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, note.Text, note.UpdatedAt, id); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note by id. Returns ErrNoteNotFound when no row
// existed to delete, so a second delete of the same id fails.
func (r *SeatNoteRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM seat_notes WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoteNotFound
	}
	return nil
}
