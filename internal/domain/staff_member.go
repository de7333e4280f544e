package domain

import "time"

// StaffRole enumerates internal operator roles.
type StaffRole string

const (
	StaffRoleAgent StaffRole = "AGENT"
	StaffRoleAdmin StaffRole = "ADMIN"
)

// StaffMember models an operator with access to the admin service list.
type StaffMember struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         StaffRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
