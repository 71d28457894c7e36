package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type employeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

func (s *Server) handleCreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and username are required"})
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	employee, err := s.employees.Create(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (s *Server) handleUpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and username are required"})
		return
	}

	employee, err := s.employees.Update(c.Request.Context(), id, req.Name, req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (s *Server) handleDeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.employees.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	employee, err := s.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (s *Server) handleListEmployees(c *gin.Context) {
	all, err := s.employees.GetAll(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := make([]employeeResponse, 0, len(all))
	for _, e := range all {
		result = append(result, toEmployeeResponse(e))
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAllWeeklyHours(c *gin.Context) {
	summaries, err := s.shifts.AllEmployeesWeeklyHours(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := make([]weeklyHoursResponse, 0, len(summaries))
	for _, w := range summaries {
		result = append(result, toWeeklyHoursResponse(w))
	}

	c.JSON(http.StatusOK, result)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
