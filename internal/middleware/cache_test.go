package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aerovane/seat-viewer/internal/config"
)

func TestNilRedisClientDisablesCache(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache"}
	mw := NewRedisCache(cfg, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seats/A320/12A", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatal("handler not invoked with nil redis client")
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Errorf("pass-through middleware should not set X-Cache, got %q", rec.Header().Get("X-Cache"))
	}
}

func TestCacheKeyDistinguishesSeats(t *testing.T) {
	e := echo.New()

	key := func(model, seat string) string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/seats/:model/:seat")
		c.SetParamNames("model", "seat")
		c.SetParamValues(model, seat)
		return cacheKey("cache", c)
	}

	a := key("A320", "12A")
	b := key("A320", "12B")
	if a == b {
		t.Errorf("distinct seats share cache key %q", a)
	}
	if a != key("A320", "12A") {
		t.Error("cache key not stable for identical requests")
	}
}

func TestCaptureWriterRespectsLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	if _, err := cw.Write([]byte("abcdef")); err != nil {
		t.Fatal(err)
	}
	// Over-limit bodies still reach the client but are not captured.
	if got := rec.Body.String(); got != "abcdef" {
		t.Errorf("client body = %q", got)
	}
	if cw.buf.Len() != 0 {
		t.Errorf("captured %d bytes past the limit", cw.buf.Len())
	}
}
