package models

import "time"

// Shift is one work interval for an employee. A shift with a nil ClockOut
// is open: the employee is currently clocked in. TotalHours is set exactly
// once at clock-out, in hours with two decimal places.
type Shift struct {
	ID         int64
	EmployeeID int64
	ClockIn    time.Time
	ClockOut   *time.Time
	TotalHours *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Open reports whether the shift has not been clocked out yet.
func (s *Shift) Open() bool {
	return s.ClockOut == nil
}
