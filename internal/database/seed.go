package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/aerovane/seat-viewer/internal/repository"
	"github.com/aerovane/seat-viewer/internal/validation"
)

// Seed inserts the sample seats and notes used for development and
// end-to-end testing. It is a no-op when seats already exist.
func Seed(ctx context.Context, db *sql.DB) error {
	seatRepo := repository.NewSeatRepo(db)

	count, err := seatRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: count seats: %w", err)
	}
	if count > 0 {
		log.Println("seed data already exists, skipping")
		return nil
	}

	now := time.Now().UTC()
	seats := []repository.Seat{
		{
			AircraftModel: "A320", SeatNumber: "12A", Position: "Window",
			HasWindow: true, PowerAvailable: true,
			PowerType:       sql.NullString{String: "USB-C", Valid: true},
			HasInSeatScreen: true,
			ExperienceSummary: sql.NullString{String: "Quiet row, good legroom", Valid: true},
			CreatedAt:         now, UpdatedAt: now,
		},
		{
			AircraftModel: "A320", SeatNumber: "12B", Position: "Middle",
			HasWindow: false, PowerAvailable: true,
			PowerType:       sql.NullString{String: "USB", Valid: true},
			HasInSeatScreen: true,
			ExperienceSummary: sql.NullString{String: "Standard middle seat", Valid: true},
			CreatedAt:         now, UpdatedAt: now,
		},
		{
			AircraftModel: "A320", SeatNumber: "12C", Position: "Aisle",
			HasWindow: false, PowerAvailable: true,
			PowerType:       sql.NullString{String: "USB-C", Valid: true},
			HasInSeatScreen: true,
			ExperienceSummary: sql.NullString{String: "Easy access to aisle", Valid: true},
			CreatedAt:         now, UpdatedAt: now,
		},
		{
			AircraftModel: "B737", SeatNumber: "15F", Position: "Window",
			HasWindow: false, PowerAvailable: false,
			HasInSeatScreen: false,
			ExperienceSummary: sql.NullString{String: "Exit row, extra legroom but no window", Valid: true},
			CreatedAt:         now, UpdatedAt: now,
		},
	}

	for _, s := range seats {
		if !validation.ValidatePowerConfiguration(s.PowerAvailable, s.PowerType.String) {
			return fmt.Errorf("seed: seat %s/%s has power available but no power type",
				s.AircraftModel, s.SeatNumber)
		}
	}

	if err := seatRepo.CreateBulk(ctx, seats); err != nil {
		return fmt.Errorf("seed: insert seats: %w", err)
	}
	log.Printf("seed data added: %d seats", len(seats))

	baseTime := now.AddDate(0, 0, -7)
	notes := []struct {
		model, seat, text string
		at                time.Time
	}{
		{"A320", "12A", "Great legroom and easy access to overhead bins. The window view is excellent for photography!", baseTime},
		{"A320", "12A", "Power outlet works perfectly for laptop charging during long flights.", baseTime.AddDate(0, 0, 2)},
		{"A320", "12B", "Too cramped as a middle seat. No power outlet is disappointing on long-haul flights.", baseTime.AddDate(0, 0, 1)},
		{"A320", "12C", "Convenient aisle access for frequent bathroom trips. USB-C power is very helpful.", baseTime.AddDate(0, 0, 3)},
		{"B737", "15F", "Exit row means extra legroom, but the lack of window is a major downside. No recline either.", baseTime.AddDate(0, 0, 4)},
		{"B737", "15F", "Perfect for tall passengers needing leg space. Just don't expect scenery or under-seat storage.", baseTime.AddDate(0, 0, 5)},
	}

	const insertNote = `INSERT INTO seat_notes (aircraft_model, seat_number, text, created_at, updated_at)
	                    VALUES (?, ?, ?, ?, ?)`
	for _, n := range notes {
		if _, err := db.ExecContext(ctx, insertNote, n.model, n.seat, n.text, n.at, n.at); err != nil {
			return fmt.Errorf("seed: insert note: %w", err)
		}
	}
	log.Printf("seed data added: %d notes", len(notes))
	return nil
}
