package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shifttracker/internal/common"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token      string `json:"token"`
	EmployeeID int64  `json:"employeeId"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// handleLogin authenticates and returns a token with a profile snapshot.
// Unlike the other endpoints, unexpected failures here are masked behind a
// fixed "Login failed" message.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, common.ErrorAccountInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:      result.Token,
		EmployeeID: result.EmployeeID,
		Name:       result.Name,
		Username:   result.Username,
		Role:       string(result.Role),
	})
}
