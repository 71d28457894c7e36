package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"shifttracker/internal/common"
	"shifttracker/internal/server/models"
)

func TestEmployeeCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{e: newFakeEmployeesRepo(), s: newFakeShiftsRepo()}
	s := NewEmployeeService(db, rm, testLogger())

	got, err := s.Create(context.Background(), "Alice", "alice", "pass123")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == 0 || got.Role != models.RoleEmployee || !got.IsActive {
		t.Fatalf("unexpected employee: %+v", got)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeCreate_UsernameTaken(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		e: newFakeEmployeesRepo(&models.Employee{ID: 1, Username: "alice"}),
		s: newFakeShiftsRepo(),
	}
	s := NewEmployeeService(db, rm, testLogger())

	_, err := s.Create(context.Background(), "Other Alice", "alice", "pass123")
	if !errors.Is(err, common.ErrorUsernameTaken) {
		t.Fatalf("want ErrorUsernameTaken, got %v", err)
	}
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{e: newFakeEmployeesRepo(), s: newFakeShiftsRepo()}
	s := NewEmployeeService(db, rm, testLogger())

	_, err := s.Update(context.Background(), 99, "x", "x", "")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestEmployeeUpdate_UsernameCollision(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		e: newFakeEmployeesRepo(
			&models.Employee{ID: 1, Username: "alice"},
			&models.Employee{ID: 2, Username: "bob"},
		),
		s: newFakeShiftsRepo(),
	}
	s := NewEmployeeService(db, rm, testLogger())

	_, err := s.Update(context.Background(), 2, "Bob", "alice", "")
	if !errors.Is(err, common.ErrorUsernameTaken) {
		t.Fatalf("want ErrorUsernameTaken, got %v", err)
	}
}

func TestEmployeeUpdate_KeepUsernameAndPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		e: newFakeEmployeesRepo(&models.Employee{
			ID: 2, Name: "Bob", Username: "bob", PasswordHash: "orig-hash",
			Role: models.RoleEmployee, IsActive: true,
		}),
		s: newFakeShiftsRepo(),
	}
	s := NewEmployeeService(db, rm, testLogger())

	// same username is not a collision; blank password stays untouched
	got, err := s.Update(context.Background(), 2, "Robert", "bob", "   ")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Robert" || got.PasswordHash != "orig-hash" {
		t.Fatalf("unexpected employee: %+v", got)
	}
}

func TestEmployeeUpdate_NewPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		e: newFakeEmployeesRepo(&models.Employee{
			ID: 2, Name: "Bob", Username: "bob", PasswordHash: "orig-hash",
			Role: models.RoleEmployee, IsActive: true,
		}),
		s: newFakeShiftsRepo(),
	}
	s := NewEmployeeService(db, rm, testLogger())

	got, err := s.Update(context.Background(), 2, "Bob", "bob", " newpass ")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	// supplied passwords are trimmed before hashing
	if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestEmployeeDelete_Admin(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		e: newFakeEmployeesRepo(&models.Employee{ID: 1, Username: "admin", Role: models.RoleAdmin}),
		s: newFakeShiftsRepo(),
	}
	s := NewEmployeeService(db, rm, testLogger())

	err := s.Delete(context.Background(), 1)
	if !errors.Is(err, common.ErrorCannotDeleteAdmin) {
		t.Fatalf("want ErrorCannotDeleteAdmin, got %v", err)
	}
	if len(rm.e.deleted) != 0 {
		t.Fatal("admin must not be deleted")
	}
}

func TestEmployeeDelete_Employee(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		e: newFakeEmployeesRepo(&models.Employee{ID: 2, Username: "bob", Role: models.RoleEmployee}),
		s: newFakeShiftsRepo(),
	}
	s := NewEmployeeService(db, rm, testLogger())

	if err := s.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(rm.e.deleted) != 1 || rm.e.deleted[0] != 2 {
		t.Fatalf("unexpected deletions: %v", rm.e.deleted)
	}
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{e: newFakeEmployeesRepo(), s: newFakeShiftsRepo()}
	s := NewEmployeeService(db, rm, testLogger())

	if err := s.SeedAdmin(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("SeedAdmin error: %v", err)
	}

	admin, err := rm.e.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != models.RoleAdmin || !admin.IsActive {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	// second boot is a no-op
	if err := s.SeedAdmin(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("SeedAdmin (second) error: %v", err)
	}
	if len(rm.e.byID) != 1 {
		t.Fatalf("want exactly one account, got %d", len(rm.e.byID))
	}
}

func TestEmployeeRoundTrip(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{e: newFakeEmployeesRepo(), s: newFakeShiftsRepo()}
	s := NewEmployeeService(db, rm, testLogger())

	created, err := s.Create(context.Background(), "Alice", "alice", "pass123")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := s.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "Alice" || got.Username != "alice" || got.Role != models.RoleEmployee || !got.IsActive {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}
