package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"pocketnotes/internal/config"
	"pocketnotes/internal/domain/sqlite"
	"pocketnotes/internal/domain/sqlite/repository"
	"pocketnotes/internal/http/handler"
	"pocketnotes/internal/service"
	"pocketnotes/internal/utils/uid"
	"pocketnotes/internal/validators"
)

func main() {
	cfg := config.Load()

	validate := validator.New()
	registerValidators(validate)

	if err := uid.Init(cfg.App.MachineID); err != nil {
		log.Fatalf("failed to initialize id generator: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open sqlite store: %v", err)
	}

	noteRepo := repository.NewNoteRepository(db)
	noteService := service.NewNoteService(noteRepo, validate)
	noteRoutes := handler.NewNoteDefault(noteService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	// Notes
	e.GET("/api/notes", noteRoutes.GetNotes)
	e.GET("/api/notes/:id", noteRoutes.GetNote)
	e.POST("/api/notes", noteRoutes.CreateNote)
	e.PATCH("/api/notes/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notes/:id", noteRoutes.DeleteNote)
	e.POST("/api/notes/:id/favorite", noteRoutes.ToggleFavorite)

	// Host lifecycle hook: persist pending changes now
	e.POST("/api/flush", noteRoutes.PersistNotes)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	go handleShutdown(e, db)

	if err := e.Start(":" + cfg.App.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server stopped: %v", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
}

// handleShutdown flushes pending sqlite changes before the process exits,
// the same "persist now" hook a mobile host calls on suspend.
func handleShutdown(e *echo.Echo, db *gorm.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sqlite.Flush(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
