// Package services contains the server-side business logic: authentication,
// employee management, and the shift lifecycle with its weekly aggregation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shifttracker/internal/common"
	"shifttracker/internal/logging"
	"shifttracker/internal/server/auth"
	"shifttracker/internal/server/config"
	"shifttracker/internal/server/models"
	"shifttracker/internal/server/repositories/repomanager"
)

// LoginResult is the token plus a denormalized profile snapshot returned
// on successful login.
type LoginResult struct {
	Token      string
	EmployeeID int64
	Name       string
	Username   string
	Role       models.Role
}

// AuthService validates credentials and issues signed session tokens.
// It is stateless: there is no session store, only the token.
type AuthService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *AuthService {
	return &AuthService{
		db:            db,
		repos:         m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		logger:        l.With("module", "auth_service"),
	}
}

// Login checks the username/password pair against the stored hash and, on
// success, returns a signed token binding the employee identity. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repos.Employees(s.db)

	employee, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "employee lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !employee.IsActive {
		return nil, common.ErrorAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(employee, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		Token:      token,
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Username:   employee.Username,
		Role:       employee.Role,
	}, nil
}
