package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"time"

	"shifttracker/internal/common"
	"shifttracker/internal/dbx"
	"shifttracker/internal/server/models"
	employeesrepo "shifttracker/internal/server/repositories/employees"
	shiftsrepo "shifttracker/internal/server/repositories/shifts"
)

// --- in-memory fakes behind the RepositoryManager interface ---

type fakeEmployeesRepo struct {
	byID   map[int64]*models.Employee
	nextID int64

	createErr error
	updateErr error
	deleteErr error
	getAllErr error

	updated []*models.Employee
	deleted []int64
}

func newFakeEmployeesRepo(seed ...*models.Employee) *fakeEmployeesRepo {
	f := &fakeEmployeesRepo{byID: map[int64]*models.Employee{}, nextID: 1}
	for _, e := range seed {
		f.byID[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeEmployeesRepo) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.ID = f.nextID
	f.nextID++
	e.CreatedAt = time.Now()
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeesRepo) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEmployeesRepo) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	for _, e := range f.byID {
		if e.Username == username {
			copied := *e
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEmployeesRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeEmployeesRepo) Update(ctx context.Context, e *models.Employee) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[e.ID]; !ok {
		return common.ErrorNotFound
	}
	copied := *e
	f.byID[e.ID] = &copied
	f.updated = append(f.updated, &copied)
	return nil
}

func (f *fakeEmployeesRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmployeesRepo) GetAll(ctx context.Context) ([]*models.Employee, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	var result []*models.Employee
	for _, e := range f.byID {
		copied := *e
		result = append(result, &copied)
	}
	return result, nil
}

type closedShift struct {
	id         int64
	clockOut   time.Time
	totalHours float64
}

type fakeShiftsRepo struct {
	active map[int64]*models.Shift
	nextID int64

	rangeOut []*models.Shift
	allOut   []*models.Shift

	createErr error
	closeErr  error

	created []*models.Shift
	closed  []closedShift

	rangeFrom, rangeTo time.Time
}

func newFakeShiftsRepo() *fakeShiftsRepo {
	return &fakeShiftsRepo{active: map[int64]*models.Shift{}, nextID: 1}
}

func (f *fakeShiftsRepo) Create(ctx context.Context, s *models.Shift) (*models.Shift, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = f.nextID
	f.nextID++
	s.CreatedAt = s.ClockIn
	s.UpdatedAt = s.ClockIn
	f.active[s.EmployeeID] = s
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeShiftsRepo) FindActiveByEmployee(ctx context.Context, employeeID int64) (*models.Shift, error) {
	s, ok := f.active[employeeID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeShiftsRepo) Close(ctx context.Context, id int64, clockOut time.Time, totalHours float64) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	for employeeID, s := range f.active {
		if s.ID == id {
			delete(f.active, employeeID)
			f.closed = append(f.closed, closedShift{id: id, clockOut: clockOut, totalHours: totalHours})
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeShiftsRepo) FindByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*models.Shift, error) {
	f.rangeFrom, f.rangeTo = from, to
	return f.rangeOut, nil
}

func (f *fakeShiftsRepo) FindAllInRange(ctx context.Context, from, to time.Time) ([]*models.Shift, error) {
	f.rangeFrom, f.rangeTo = from, to
	return f.allOut, nil
}

type fakeRepoManager struct {
	e *fakeEmployeesRepo
	s *fakeShiftsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *fakeRepoManager) Employees(db dbx.DBTX) employeesrepo.Repository { return m.e }
func (m *fakeRepoManager) Shifts(db dbx.DBTX) shiftsrepo.Repository       { return m.s }

func discardSlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
