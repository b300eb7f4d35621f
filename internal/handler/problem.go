package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aerovane/seat-viewer/internal/repository"
)

// Problem is an RFC 7807 problem document, returned for any failure
// that is not handled inside a handler.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	TraceID  string `json:"traceId"`
}

const genericDetail = "An error occurred processing your request."

// NewProblemHandler returns an echo HTTPErrorHandler that maps errors
// to problem documents. The real error message is exposed as the detail
// only outside production; the full error is always logged.
func NewProblemHandler(appEnv string) echo.HTTPErrorHandler {
	production := appEnv == "production"

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := err.Error()

		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			detail = fmt.Sprintf("%v", httpErr.Message)
		case errors.Is(err, repository.ErrSeatNotFound),
			errors.Is(err, repository.ErrNoteNotFound):
			status = http.StatusNotFound
		}

		c.Logger().Errorf("request failed: %s %s: %v",
			c.Request().Method, c.Request().URL.Path, err)

		if production && status == http.StatusInternalServerError {
			detail = genericDetail
		}

		problem := Problem{
			Type:     fmt.Sprintf("https://httpstatuses.com/%d", status),
			Title:    problemTitle(status),
			Status:   status,
			Detail:   detail,
			Instance: c.Request().URL.Path,
			TraceID:  c.Response().Header().Get(echo.HeaderXRequestID),
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(status); err != nil {
				c.Logger().Error(err)
			}
			return
		}
		if err := c.JSON(status, problem); err != nil {
			c.Logger().Error(err)
		}
	}
}

func problemTitle(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "An error occurred"
	}
}
