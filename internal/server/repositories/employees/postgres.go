package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"shifttracker/internal/common"
	"shifttracker/internal/dbx"
	"shifttracker/internal/server/models"
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {

	query :=
		`INSERT INTO employees (name, username, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.Name, e.Username, e.PasswordHash, e.Role, e.IsActive).Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		// concurrent insert racing past the exists check
		if isUniqueViolation(err) {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query :=
		`SELECT id, name, username, password_hash, role, is_active, created_at FROM employees
		 WHERE id = $1
		 `

	e := &models.Employee{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Username, &e.PasswordHash, &e.Role, &e.IsActive, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	query :=
		`SELECT id, name, username, password_hash, role, is_active, created_at FROM employees
		 WHERE username = $1
		 `

	e := &models.Employee{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&e.ID, &e.Name, &e.Username, &e.PasswordHash, &e.Role, &e.IsActive, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM employees WHERE username = $1)
		 `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Employee) error {
	query :=
		`UPDATE employees SET name = $1, username = $2, password_hash = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, e.Name, e.Username, e.PasswordHash, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrorUsernameTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM employees
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	query :=
		`SELECT id, name, username, password_hash, role, is_active, created_at FROM employees
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Employee
	for rows.Next() {
		e := &models.Employee{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Username, &e.PasswordHash, &e.Role, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
