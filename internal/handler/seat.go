// Package handler contains the HTTP handlers for the seat-viewer API.
package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aerovane/seat-viewer/internal/repository"
	"github.com/aerovane/seat-viewer/internal/validation"
)

// SeatCatalog is the read-only seat lookup surface the seat handlers
// depend on. *repository.SeatRepo satisfies it.
type SeatCatalog interface {
	Get(ctx context.Context, model, seatNumber string) (*repository.Seat, error)
	ListByModel(ctx context.Context, model string) ([]repository.Seat, error)
}

// SeatResponse is the JSON projection of a seat's attributes.
type SeatResponse struct {
	AircraftModel     string  `json:"aircraftModel"`
	SeatNumber        string  `json:"seatNumber"`
	Position          string  `json:"position"`
	HasWindow         bool    `json:"hasWindow"`
	PowerAvailable    bool    `json:"powerAvailable"`
	PowerType         *string `json:"powerType"`
	HasInSeatScreen   bool    `json:"hasInSeatScreen"`
	ExperienceSummary *string `json:"experienceSummary"`
}

// SeatHandler serves the read-only seat attribute endpoints.
type SeatHandler struct {
	Catalog SeatCatalog
}

// NewSeatHandler constructs a SeatHandler over the given catalog.
func NewSeatHandler(catalog SeatCatalog) *SeatHandler {
	return &SeatHandler{Catalog: catalog}
}

// GetSeatAttributes handles GET /seats/:model/:seat. The seat number is
// validated before any store access; an unknown seat yields 404.
func (h *SeatHandler) GetSeatAttributes(c echo.Context) error {
	model := c.Param("model")
	seatNumber := c.Param("seat")

	if !validation.IsValidSeatNumber(seatNumber) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid seat number format: %s. Expected pattern: row digits + seat letter (A-F).", seatNumber),
		})
	}

	seat, err := h.Catalog.Get(c.Request().Context(), model, seatNumber)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "seat not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toSeatResponse(seat))
}

// ListSeats handles GET /seats/:model and returns all seats for the
// aircraft model ordered by seat number. Unknown models return an empty
// array, not an error.
func (h *SeatHandler) ListSeats(c echo.Context) error {
	model := c.Param("model")

	seats, err := h.Catalog.ListByModel(c.Request().Context(), model)
	if err != nil {
		return err
	}

	out := make([]SeatResponse, 0, len(seats))
	for i := range seats {
		out = append(out, toSeatResponse(&seats[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func toSeatResponse(s *repository.Seat) SeatResponse {
	return SeatResponse{
		AircraftModel:     s.AircraftModel,
		SeatNumber:        s.SeatNumber,
		Position:          s.Position,
		HasWindow:         s.HasWindow,
		PowerAvailable:    s.PowerAvailable,
		PowerType:         nullableString(s.PowerType),
		HasInSeatScreen:   s.HasInSeatScreen,
		ExperienceSummary: nullableString(s.ExperienceSummary),
	}
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
