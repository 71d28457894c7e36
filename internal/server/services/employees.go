package services

import (
	"context"
	"database/sql"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shifttracker/internal/common"
	"shifttracker/internal/dbx"
	"shifttracker/internal/logging"
	"shifttracker/internal/server/models"
	"shifttracker/internal/server/repositories/repomanager"
)

// EmployeeService manages employee records: create, update, delete, list,
// plus the idempotent admin seed that runs at startup.
type EmployeeService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *EmployeeService {
	return &EmployeeService{
		db:     db,
		repos:  m,
		logger: l.With("module", "employee_service"),
	}
}

// Create adds a new active EMPLOYEE-role account. The username must not
// collide with an existing one (case-sensitive exact match).
func (s *EmployeeService) Create(ctx context.Context, name, username, password string) (*models.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	employee := &models.Employee{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
		IsActive:     true,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Employees(tx)

		taken, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrorUsernameTaken
		}

		employee, err = repo.Create(ctx, employee)
		return err
	}); err != nil {
		return nil, err
	}

	return employee, nil
}

// Update changes name and username, and the password when a non-blank one
// is supplied. Role and active flag are left untouched.
func (s *EmployeeService) Update(ctx context.Context, id int64, name, username, password string) (*models.Employee, error) {
	var employee *models.Employee

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Employees(tx)

		var err error
		employee, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if username != employee.Username {
			taken, err := repo.ExistsByUsername(ctx, username)
			if err != nil {
				return err
			}
			if taken {
				return common.ErrorUsernameTaken
			}
		}

		employee.Name = name
		employee.Username = username

		if trimmed := strings.TrimSpace(password); trimmed != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(trimmed), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			employee.PasswordHash = string(hash)
		}

		return repo.Update(ctx, employee)
	}); err != nil {
		return nil, err
	}

	return employee, nil
}

// Delete removes an EMPLOYEE-role account. Admin accounts are never deleted.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Employees(tx)

		employee, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if employee.Role == models.RoleAdmin {
			return common.ErrorCannotDeleteAdmin
		}

		return repo.Delete(ctx, id)
	})
}

// GetByID returns a single employee record.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	return s.repos.Employees(s.db).GetByID(ctx, id)
}

// GetAll returns every employee record, store-ordered.
func (s *EmployeeService) GetAll(ctx context.Context) ([]*models.Employee, error) {
	return s.repos.Employees(s.db).GetAll(ctx)
}

// SeedAdmin creates the admin account on first boot. Subsequent boots see
// the existing username and do nothing.
func (s *EmployeeService) SeedAdmin(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Employees(tx)

		exists, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		admin := &models.Employee{
			Name:         "Admin",
			Username:     username,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			IsActive:     true,
		}

		if _, err := repo.Create(ctx, admin); err != nil {
			return err
		}

		s.logger.Info(ctx, "admin account created", "username", username)
		return nil
	})
}
