// Package rest exposes the HTTP API: login, admin employee management, and
// the shift endpoints driven by the bearer token identity.
package rest

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shifttracker/internal/logging"
	"shifttracker/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	db        *sql.DB
	auth      *services.AuthService
	employees *services.EmployeeService
	shifts    *services.ShiftService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, db *sql.DB, as *services.AuthService, es *services.EmployeeService, ss *services.ShiftService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "rest_server"),
		db:        db,
		auth:      as,
		employees: es,
		shifts:    ss,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.requestLogger())

	api := router.Group("/api")

	api.GET("/health", s.handleHealth)
	api.POST("/auth/login", s.handleLogin)

	admin := api.Group("/admin", s.authRequired(), s.adminRequired())
	{
		admin.POST("/employees", s.handleCreateEmployee)
		admin.GET("/employees", s.handleListEmployees)
		admin.GET("/employees/:id", s.handleGetEmployee)
		admin.PUT("/employees/:id", s.handleUpdateEmployee)
		admin.DELETE("/employees/:id", s.handleDeleteEmployee)
		admin.GET("/weekly-hours", s.handleAllWeeklyHours)
	}

	shifts := api.Group("/shifts", s.authRequired())
	{
		shifts.POST("/clock-in", s.handleClockIn)
		shifts.POST("/clock-out", s.handleClockOut)
		shifts.GET("/active", s.handleActiveShift)
		shifts.GET("/weekly-hours", s.handleWeeklyHours)
	}

	return router
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
