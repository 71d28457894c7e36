// Package server initializes and runs the application: it wires the
// database, repositories, and services, applies migrations, seeds the admin
// account, and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"shifttracker/internal/logging"
	"shifttracker/internal/server/config"
	"shifttracker/internal/server/repositories/repomanager"
	"shifttracker/internal/server/rest"
	"shifttracker/internal/server/services"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	repos     repomanager.RepositoryManager
	auth      *services.AuthService
	employees *services.EmployeeService
	shifts    *services.ShiftService
}

func NewApp(c *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	as := services.NewAuthService(db, rm, c, logger)
	es := services.NewEmployeeService(db, rm, logger)
	ss := services.NewShiftService(db, rm, logger)

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		repos:     rm,
		auth:      as,
		employees: es,
		shifts:    ss,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddr, app.logger, app.db, app.auth, app.employees, app.shifts, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db connect error: %w", err)
	}

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if err := app.employees.SeedAdmin(ctx, app.config.AdminUsername, app.config.AdminPassword); err != nil {
		return fmt.Errorf("admin seed error: %w", err)
	}

	gin.SetMode(app.config.GinMode)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	return app.db.Close()
}
