package models

// Role is the closed set of user roles. A user holds exactly one role for
// its whole lifetime; there is no role-change flow.
type Role string

const (
	// RoleCitizen files complaints and sees only their own.
	RoleCitizen Role = "citizen"
	// RoleOfficer works the complaints of exactly one department.
	RoleOfficer Role = "officer"
	// RoleAdmin sees everything and may delete, but never transitions status.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleOfficer, RoleAdmin:
		return true
	}
	return false
}
