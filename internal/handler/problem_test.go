package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aerovane/seat-viewer/internal/repository"
)

func invokeProblemHandler(t *testing.T, appEnv string, err error) (*httptest.ResponseRecorder, Problem) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seats/A320/12A", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-123")

	NewProblemHandler(appEnv)(err, c)

	var p Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode problem document: %v", err)
	}
	return rec, p
}

func TestProblemHandlerMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		title  string
	}{
		{repository.ErrSeatNotFound, http.StatusNotFound, "Not Found"},
		{repository.ErrNoteNotFound, http.StatusNotFound, "Not Found"},
		{echo.NewHTTPError(http.StatusBadRequest, "bad input"), http.StatusBadRequest, "Bad Request"},
		{echo.NewHTTPError(http.StatusUnauthorized, "no"), http.StatusUnauthorized, "Unauthorized"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		rec, p := invokeProblemHandler(t, "dev", tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
		if p.Status != tc.status || p.Title != tc.title {
			t.Errorf("%v: problem = %+v", tc.err, p)
		}
		if p.Instance != "/seats/A320/12A" {
			t.Errorf("instance = %q", p.Instance)
		}
		if p.TraceID != "req-123" {
			t.Errorf("traceId = %q", p.TraceID)
		}
	}
}

func TestProblemHandlerHidesDetailInProduction(t *testing.T) {
	_, p := invokeProblemHandler(t, "production", errors.New("sql: connection refused"))
	if p.Detail != genericDetail {
		t.Errorf("production detail = %q, want generic", p.Detail)
	}

	_, p = invokeProblemHandler(t, "dev", errors.New("sql: connection refused"))
	if p.Detail != "sql: connection refused" {
		t.Errorf("dev detail = %q, want real message", p.Detail)
	}
}

func TestProblemHandlerTypeURI(t *testing.T) {
	_, p := invokeProblemHandler(t, "dev", repository.ErrNoteNotFound)
	if p.Type != "https://httpstatuses.com/404" {
		t.Errorf("type = %q", p.Type)
	}
}
