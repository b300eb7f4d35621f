package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the seats and seat_notes tables. DATETIME(6)
// keeps microsecond precision so consecutive updates to the same note
// produce strictly increasing updated_at values.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS seats (
		aircraft_model     VARCHAR(64)  NOT NULL,
		seat_number        VARCHAR(8)   NOT NULL,
		position           VARCHAR(16)  NOT NULL,
		has_window         BOOLEAN      NOT NULL DEFAULT FALSE,
		power_available    BOOLEAN      NOT NULL DEFAULT FALSE,
		power_type         VARCHAR(32)  NULL,
		has_in_seat_screen BOOLEAN      NOT NULL DEFAULT FALSE,
		experience_summary VARCHAR(500) NULL,
		created_at         DATETIME(6)  NOT NULL,
		updated_at         DATETIME(6)  NOT NULL,
		PRIMARY KEY (aircraft_model, seat_number),
		INDEX idx_seats_position (position)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seat_notes (
		id             BIGINT       NOT NULL AUTO_INCREMENT,
		aircraft_model VARCHAR(64)  NOT NULL,
		seat_number    VARCHAR(8)   NOT NULL,
		text           VARCHAR(500) NOT NULL,
		created_at     DATETIME(6)  NOT NULL,
		updated_at     DATETIME(6)  NOT NULL,
		PRIMARY KEY (id),
		INDEX idx_seat_notes_seat_updated (aircraft_model, seat_number, updated_at),
		CONSTRAINT fk_seat_notes_seat
			FOREIGN KEY (aircraft_model, seat_number)
			REFERENCES seats (aircraft_model, seat_number)
			ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when they do not exist yet. The
// statements are idempotent so running at every boot is safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
