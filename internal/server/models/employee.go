// Package models holds the server-side domain records.
package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Employee is a staff account. PasswordHash never leaves the server;
// transport layers expose only the public profile fields.
type Employee struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
