package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/aerovane/seat-viewer/internal/config"
	"github.com/aerovane/seat-viewer/internal/database"
	"github.com/aerovane/seat-viewer/internal/handler"
	"github.com/aerovane/seat-viewer/internal/queue"
	"github.com/aerovane/seat-viewer/internal/repository"
	"github.com/aerovane/seat-viewer/internal/router"
	"github.com/aerovane/seat-viewer/internal/service"
)

func main() {
	// Best-effort .env load; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}
	if cfg.Env != "production" {
		if err := database.Seed(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache and rate limiting disabled")
	}

	// Background consumer logs note activity from the broker. It runs
	// its own reconnect loop and never blocks request handling.
	go queue.StartNoteConsumer()

	seatH := handler.NewSeatHandler(repository.NewSeatRepo(db))
	noteH := handler.NewNoteHandler(repository.NewSeatNoteRepo(db), service.PublishNoteEvent)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewProblemHandler(cfg.Env)
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e, seatH, noteH, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
