package shifts

import (
	"context"
	"time"

	"shifttracker/internal/server/models"
)

type Repository interface {
	// Create inserts an open shift (clock_out and total_hours stay NULL).
	Create(ctx context.Context, s *models.Shift) (*models.Shift, error)

	// FindActiveByEmployee returns the employee's open shift,
	// or common.ErrorNotFound if there is none.
	FindActiveByEmployee(ctx context.Context, employeeID int64) (*models.Shift, error)

	// Close stamps clock_out and total_hours on the given shift.
	Close(ctx context.Context, id int64, clockOut time.Time, totalHours float64) error

	// FindByEmployeeInRange returns the employee's shifts whose clock_in
	// falls in [from, to], newest first.
	FindByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*models.Shift, error)

	// FindAllInRange returns every shift whose clock_in falls in [from, to],
	// grouped by employee then newest first.
	FindAllInRange(ctx context.Context, from, to time.Time) ([]*models.Shift, error)
}
