package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shifttracker/internal/common"
	"shifttracker/internal/dbx"
	"shifttracker/internal/logging"
	"shifttracker/internal/server/models"
	"shifttracker/internal/server/repositories/repomanager"
)

// ShiftDetail pairs a shift with the owning employee's display name.
type ShiftDetail struct {
	Shift        *models.Shift
	EmployeeName string
}

// WeeklySummary is one employee's hours for the current week. Open shifts
// appear in Shifts but contribute nothing to the total.
type WeeklySummary struct {
	EmployeeID       int64
	EmployeeName     string
	TotalWeeklyHours float64
	Shifts           []*models.Shift
}

// ShiftService drives the clock-in/clock-out state machine and the weekly
// aggregation over the Monday–Sunday window.
type ShiftService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger

	// now is read exactly once per operation; tests pin it.
	now func() time.Time
}

func NewShiftService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ShiftService {
	return &ShiftService{
		db:     db,
		repos:  m,
		logger: l.With("module", "shift_service"),
		now:    time.Now,
	}
}

// ClockIn opens a new shift for the employee. The check-then-create runs in
// one transaction; a partial unique index on the shifts table backstops the
// one-open-shift invariant against concurrent attempts.
func (s *ShiftService) ClockIn(ctx context.Context, employeeID int64) (*ShiftDetail, error) {
	now := s.now()

	var detail *ShiftDetail
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		employee, err := s.repos.Employees(tx).GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		repo := s.repos.Shifts(tx)

		_, err = repo.FindActiveByEmployee(ctx, employeeID)
		if err == nil {
			return common.ErrorAlreadyClockedIn
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		shift, err := repo.Create(ctx, &models.Shift{EmployeeID: employeeID, ClockIn: now})
		if err != nil {
			return err
		}

		detail = &ShiftDetail{Shift: shift, EmployeeName: employee.Name}
		return nil
	}); err != nil {
		return nil, err
	}

	return detail, nil
}

// ClockOut closes the employee's open shift, stamping clock_out and the
// rounded total hours.
func (s *ShiftService) ClockOut(ctx context.Context, employeeID int64) (*ShiftDetail, error) {
	now := s.now()

	var detail *ShiftDetail
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Shifts(tx)

		shift, err := repo.FindActiveByEmployee(ctx, employeeID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNoActiveShift
			}
			return err
		}

		hours := shiftHours(now.Sub(shift.ClockIn))

		if err := repo.Close(ctx, shift.ID, now, hours); err != nil {
			return err
		}

		clockOut := now
		shift.ClockOut = &clockOut
		shift.TotalHours = &hours

		employee, err := s.repos.Employees(tx).GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		detail = &ShiftDetail{Shift: shift, EmployeeName: employee.Name}
		return nil
	}); err != nil {
		return nil, err
	}

	return detail, nil
}

// ActiveShift returns the employee's open shift, or (nil, nil) when the
// employee is not clocked in.
func (s *ShiftService) ActiveShift(ctx context.Context, employeeID int64) (*ShiftDetail, error) {
	shift, err := s.repos.Shifts(s.db).FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}

	employee, err := s.repos.Employees(s.db).GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &ShiftDetail{Shift: shift, EmployeeName: employee.Name}, nil
}

// WeeklyHours sums the employee's closed shifts for the current week and
// lists every shift in the window, newest first.
func (s *ShiftService) WeeklyHours(ctx context.Context, employeeID int64) (*WeeklySummary, error) {
	start, end := currentWeekRange(s.now())

	employee, err := s.repos.Employees(s.db).GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	shifts, err := s.repos.Shifts(s.db).FindByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	return &WeeklySummary{
		EmployeeID:       employee.ID,
		EmployeeName:     employee.Name,
		TotalWeeklyHours: sumHours(shifts),
		Shifts:           shifts,
	}, nil
}

// AllEmployeesWeeklyHours builds one WeeklySummary per EMPLOYEE-role
// account for the current week. Employees with no shifts in the window get
// a zero-total entry; admin accounts are excluded from the report.
func (s *ShiftService) AllEmployeesWeeklyHours(ctx context.Context) ([]*WeeklySummary, error) {
	start, end := currentWeekRange(s.now())

	allShifts, err := s.repos.Shifts(s.db).FindAllInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[int64][]*models.Shift)
	for _, shift := range allShifts {
		byEmployee[shift.EmployeeID] = append(byEmployee[shift.EmployeeID], shift)
	}

	employees, err := s.repos.Employees(s.db).GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*WeeklySummary, 0, len(employees))
	for _, employee := range employees {
		if employee.Role != models.RoleEmployee {
			continue
		}

		shifts := byEmployee[employee.ID]
		summaries = append(summaries, &WeeklySummary{
			EmployeeID:       employee.ID,
			EmployeeName:     employee.Name,
			TotalWeeklyHours: sumHours(shifts),
			Shifts:           shifts,
		})
	}

	return summaries, nil
}
