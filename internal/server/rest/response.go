package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shifttracker/internal/common"
	"shifttracker/internal/server/models"
	"shifttracker/internal/server/services"
)

type employeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type shiftResponse struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	ClockIn      time.Time  `json:"clockIn"`
	ClockOut     *time.Time `json:"clockOut"`
	TotalHours   *float64   `json:"totalHours"`
}

type weeklyHoursResponse struct {
	EmployeeID       int64           `json:"employeeId"`
	EmployeeName     string          `json:"employeeName"`
	TotalWeeklyHours float64         `json:"totalWeeklyHours"`
	Shifts           []shiftResponse `json:"shifts"`
}

func toEmployeeResponse(e *models.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Username:  e.Username,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

func toShiftResponse(s *models.Shift, employeeName string) shiftResponse {
	return shiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: employeeName,
		ClockIn:      s.ClockIn,
		ClockOut:     s.ClockOut,
		TotalHours:   s.TotalHours,
	}
}

func toWeeklyHoursResponse(w *services.WeeklySummary) weeklyHoursResponse {
	shifts := make([]shiftResponse, 0, len(w.Shifts))
	for _, s := range w.Shifts {
		shifts = append(shifts, toShiftResponse(s, w.EmployeeName))
	}
	return weeklyHoursResponse{
		EmployeeID:       w.EmployeeID,
		EmployeeName:     w.EmployeeName,
		TotalWeeklyHours: w.TotalWeeklyHours,
		Shifts:           shifts,
	}
}

// writeError maps domain errors onto HTTP statuses. Unrecognized errors are
// logged and surfaced as a generic 500; their messages never reach the
// caller.
func (s *Server) writeError(c *gin.Context, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrorAccountInactive):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorUsernameTaken):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, common.ErrorCannotDeleteAdmin),
		errors.Is(err, common.ErrorAlreadyClockedIn),
		errors.Is(err, common.ErrorNoActiveShift):
		status, message = http.StatusBadRequest, err.Error()
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"request_id", c.GetString("request_id"), "error", err)
		status, message = http.StatusInternalServerError, common.ErrorInternal.Error()
	}

	c.JSON(status, gin.H{"error": message})
}
