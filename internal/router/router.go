// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/aerovane/seat-viewer/internal/config"
	"github.com/aerovane/seat-viewer/internal/handler"
	"github.com/aerovane/seat-viewer/internal/middleware"
)

// RegisterRoutes wires all endpoints onto the provided Echo instance.
// Seat attribute reads go through the Redis response cache (seats are
// immutable via the API); note routes stay uncached so writes are
// visible immediately. rdb may be nil, which disables caching and rate
// limiting.
func RegisterRoutes(e *echo.Echo, seatH *handler.SeatHandler, noteH *handler.NoteHandler, rdb *redis.Client) {
	e.GET("/health", handler.Health)

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	seats := e.Group("/seats")
	seats.GET("/:model", seatH.ListSeats, cacheMW)
	seats.GET("/:model/:seat", seatH.GetSeatAttributes, cacheMW)
	seats.GET("/:model/:seat/notes", noteH.ListNotes)
	seats.POST("/:model/:seat/notes", noteH.CreateNote)

	e.PUT("/notes/:noteId", noteH.UpdateNote)
	e.DELETE("/notes/:noteId", noteH.DeleteNote)
}
