package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleClockIn(c *gin.Context) {
	detail, err := s.shifts.ClockIn(c.Request.Context(), tokenClaims(c).EmployeeID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toShiftResponse(detail.Shift, detail.EmployeeName))
}

func (s *Server) handleClockOut(c *gin.Context) {
	detail, err := s.shifts.ClockOut(c.Request.Context(), tokenClaims(c).EmployeeID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toShiftResponse(detail.Shift, detail.EmployeeName))
}

// handleActiveShift returns the caller's open shift, or 404 when the caller
// is not clocked in. The 404 carries no body; it is a "none" result, not an
// error.
func (s *Server) handleActiveShift(c *gin.Context) {
	detail, err := s.shifts.ActiveShift(c.Request.Context(), tokenClaims(c).EmployeeID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if detail == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, toShiftResponse(detail.Shift, detail.EmployeeName))
}

func (s *Server) handleWeeklyHours(c *gin.Context) {
	summary, err := s.shifts.WeeklyHours(c.Request.Context(), tokenClaims(c).EmployeeID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWeeklyHoursResponse(summary))
}
