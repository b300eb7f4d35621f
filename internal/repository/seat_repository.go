package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Seat represents an aircraft seat with its fixed physical and amenity
// attributes. Seats are identified by the composite key
// (AircraftModel, SeatNumber) and are read-only from the API's point of
// view; seeding is the only writer.
type Seat struct {
	AircraftModel     string
	SeatNumber        string
	Position          string // Aisle | Middle | Window
	HasWindow         bool
	PowerAvailable    bool
	PowerType         sql.NullString
	HasInSeatScreen   bool
	ExperienceSummary sql.NullString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SeatRepo provides read access to the seat catalog.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

const seatColumns = `aircraft_model, seat_number, position, has_window,
	power_available, power_type, has_in_seat_screen, experience_summary,
	created_at, updated_at`

// Get retrieves a seat by its composite key. Returns ErrSeatNotFound
// when no row matches.
func (r *SeatRepo) Get(ctx context.Context, model, seatNumber string) (*Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM seats WHERE aircraft_model = ? AND seat_number = ?`
	var s Seat
	err := r.db.QueryRowContext(ctx, q, model, seatNumber).Scan(
		&s.AircraftModel, &s.SeatNumber, &s.Position, &s.HasWindow,
		&s.PowerAvailable, &s.PowerType, &s.HasInSeatScreen, &s.ExperienceSummary,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByModel retrieves all seats for an aircraft model ordered by seat
// number ascending. Ordering is lexicographic ("10A" sorts before "2A").
// Returns an empty slice when the model has no seats.
func (r *SeatRepo) ListByModel(ctx context.Context, model string) ([]Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM seats WHERE aircraft_model = ?
	           ORDER BY seat_number`
	rows, err := r.db.QueryContext(ctx, q, model)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Seat
	for rows.Next() {
		var s Seat
		if err := rows.Scan(
			&s.AircraftModel, &s.SeatNumber, &s.Position, &s.HasWindow,
			&s.PowerAvailable, &s.PowerType, &s.HasInSeatScreen, &s.ExperienceSummary,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateBulk inserts multiple seats in a single statement. Only the
// seeder writes seats; there is no API write path.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seats (` + seatColumns + `) VALUES `
	args := make([]interface{}, 0, len(seats)*10)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		args = append(args, s.AircraftModel, s.SeatNumber, s.Position, s.HasWindow,
			s.PowerAvailable, s.PowerType, s.HasInSeatScreen, s.ExperienceSummary,
			s.CreatedAt, s.UpdatedAt)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// CountAll returns the total number of seats. The seeder uses it to
// skip seeding when data already exists.
func (r *SeatRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seats`).Scan(&n)
	return n, err
}
