package shifts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, s *models.Shift) (*models.Shift, error) {

	query :=
		`INSERT INTO shifts (employee_id, clock_in)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		s.EmployeeID, s.ClockIn).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		// the partial unique index caught a concurrent open shift
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyClockedIn
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) FindActiveByEmployee(ctx context.Context, employeeID int64) (*models.Shift, error) {
	query :=
		`SELECT id, employee_id, clock_in, clock_out, total_hours, created_at, updated_at FROM shifts
		 WHERE employee_id = $1 AND clock_out IS NULL
		 `

	s := &models.Shift{}
	err := r.db.QueryRowContext(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.TotalHours, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Close(ctx context.Context, id int64, clockOut time.Time, totalHours float64) error {
	query :=
		`UPDATE shifts SET clock_out = $1, total_hours = $2, updated_at = now()
		 WHERE id = $3 AND clock_out IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, clockOut, totalHours, id)
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

func (r *PostgresRepository) FindByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*models.Shift, error) {
	query :=
		`SELECT id, employee_id, clock_in, clock_out, total_hours, created_at, updated_at FROM shifts
		 WHERE employee_id = $1 AND clock_in >= $2 AND clock_in <= $3
		 ORDER BY clock_in DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

func (r *PostgresRepository) FindAllInRange(ctx context.Context, from, to time.Time) ([]*models.Shift, error) {
	query :=
		`SELECT id, employee_id, clock_in, clock_out, total_hours, created_at, updated_at FROM shifts
		 WHERE clock_in >= $1 AND clock_in <= $2
		 ORDER BY employee_id, clock_in DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

func scanShifts(rows *sql.Rows) ([]*models.Shift, error) {
	var result []*models.Shift
	for rows.Next() {
		s := &models.Shift{}
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.TotalHours, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
