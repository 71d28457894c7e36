// Package repomanager vends repository implementations bound to a concrete
// database handle (either *sql.DB or a transaction). Services pick the
// handle per operation, which keeps check-then-act sequences transactional.
package repomanager

import (
	"context"
	"database/sql"

	"shifttracker/internal/dbx"
	"shifttracker/internal/server/repositories/employees"
	"shifttracker/internal/server/repositories/shifts"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Employees(db dbx.DBTX) employees.Repository
	Shifts(db dbx.DBTX) shifts.Repository
}
