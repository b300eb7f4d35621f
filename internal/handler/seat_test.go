package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aerovane/seat-viewer/internal/repository"
)

type fakeCatalog struct {
	seats map[string]repository.Seat // keyed by model/seat
}

func (f *fakeCatalog) Get(_ context.Context, model, seatNumber string) (*repository.Seat, error) {
	s, ok := f.seats[model+"/"+seatNumber]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	return &s, nil
}

func (f *fakeCatalog) ListByModel(_ context.Context, model string) ([]repository.Seat, error) {
	var out []repository.Seat
	for _, s := range f.seats {
		if s.AircraftModel == model {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatNumber < out[j].SeatNumber })
	return out, nil
}

func seededCatalog() *fakeCatalog {
	return &fakeCatalog{seats: map[string]repository.Seat{
		"A320/12A": {
			AircraftModel: "A320", SeatNumber: "12A", Position: "Window",
			HasWindow: true, PowerAvailable: true,
			PowerType:       sql.NullString{String: "USB-C", Valid: true},
			HasInSeatScreen: true,
		},
		"A320/12B": {
			AircraftModel: "A320", SeatNumber: "12B", Position: "Middle",
			PowerAvailable: true,
			PowerType:      sql.NullString{String: "USB", Valid: true},
		},
	}}
}

func newSeatContext(t *testing.T, model, seat string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/seats/:model/:seat")
	c.SetParamNames("model", "seat")
	c.SetParamValues(model, seat)
	return c, rec
}

func TestGetSeatAttributes(t *testing.T) {
	h := NewSeatHandler(seededCatalog())

	t.Run("known seat returns attributes", func(t *testing.T) {
		c, rec := newSeatContext(t, "A320", "12A")
		if err := h.GetSeatAttributes(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got SeatResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.Position != "Window" || !got.HasWindow {
			t.Errorf("got position=%q hasWindow=%v, want Window/true", got.Position, got.HasWindow)
		}
		if got.PowerType == nil || *got.PowerType != "USB-C" {
			t.Errorf("got powerType=%v, want USB-C", got.PowerType)
		}
		if got.ExperienceSummary != nil {
			t.Errorf("expected null experienceSummary, got %q", *got.ExperienceSummary)
		}
	})

	t.Run("unknown seat returns 404", func(t *testing.T) {
		c, rec := newSeatContext(t, "A320", "99F")
		if err := h.GetSeatAttributes(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed seat number returns 400 without store access", func(t *testing.T) {
		for _, bad := range []string{"1", "12a", "12G", "A12", ""} {
			c, rec := newSeatContext(t, "A320", bad)
			if err := h.GetSeatAttributes(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("seat %q: status = %d, want 400", bad, rec.Code)
			}
		}
	})
}

func TestListSeats(t *testing.T) {
	h := NewSeatHandler(seededCatalog())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/seats/:model")
	c.SetParamNames("model")
	c.SetParamValues("A320")

	if err := h.ListSeats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []SeatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 || got[0].SeatNumber != "12A" || got[1].SeatNumber != "12B" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestListSeatsUnknownModelReturnsEmptyArray(t *testing.T) {
	h := NewSeatHandler(seededCatalog())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/seats/:model")
	c.SetParamNames("model")
	c.SetParamValues("B747")

	if err := h.ListSeats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}
