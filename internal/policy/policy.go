// Package policy holds the access rules of the complaint tracker as pure
// predicates over an Actor and a complaint record. The actor is always
// built from a verified token and passed in explicitly; nothing here reads
// ambient session state.
package policy

import "civicdesk/backend/internal/models"

// Actor is the authenticated principal attached to every request.
type Actor struct {
	UserID string
	Role   models.Role
	// DepartmentID is set iff Role is officer.
	DepartmentID *uint
}

// Scope describes the slice of the complaint table an actor may list.
// A zero Scope means unrestricted (admin).
type Scope struct {
	// OwnerID filters by complaint owner when non-empty.
	OwnerID string
	// DepartmentID filters by target department when non-nil.
	DepartmentID *uint
}

// CanCreate reports whether the actor may file a new complaint.
// Only citizens create complaints, always on their own behalf.
func CanCreate(a Actor) bool {
	switch a.Role {
	case models.RoleCitizen:
		return true
	case models.RoleOfficer, models.RoleAdmin:
		return false
	}
	return false
}

// CanRead reports whether the actor may see the given complaint.
func CanRead(a Actor, c *models.Complaint) bool {
	return CanReadRecord(a, c.UserID, c.DepartmentID)
}

// CanReadRecord is CanRead over the identifying fields alone, so event
// payloads can be checked without loading the full record.
func CanReadRecord(a Actor, ownerID string, departmentID uint) bool {
	switch a.Role {
	case models.RoleCitizen:
		return a.UserID == ownerID
	case models.RoleOfficer:
		return a.DepartmentID != nil && *a.DepartmentID == departmentID
	case models.RoleAdmin:
		return true
	}
	return false
}

// CanTransition reports whether the actor may change the complaint's status.
// Only an officer of the complaint's department qualifies; admins are
// deliberately excluded (they may only read and delete).
func CanTransition(a Actor, c *models.Complaint) bool {
	switch a.Role {
	case models.RoleOfficer:
		return a.DepartmentID != nil && *a.DepartmentID == c.DepartmentID
	case models.RoleCitizen, models.RoleAdmin:
		return false
	}
	return false
}

// CanDelete reports whether the actor may hard-delete complaints.
func CanDelete(a Actor) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleCitizen, models.RoleOfficer:
		return false
	}
	return false
}

// CanViewStats reports whether the actor may read aggregate statistics.
func CanViewStats(a Actor) bool {
	return a.Role == models.RoleAdmin
}

// CanManageDepartments reports whether the actor may add departments.
func CanManageDepartments(a Actor) bool {
	return a.Role == models.RoleAdmin
}

// ScopeFor returns the list filter the actor's role implies: citizens see
// their own complaints, officers their department's, admins everything.
func ScopeFor(a Actor) Scope {
	switch a.Role {
	case models.RoleCitizen:
		return Scope{OwnerID: a.UserID}
	case models.RoleOfficer:
		return Scope{DepartmentID: a.DepartmentID}
	case models.RoleAdmin:
		return Scope{}
	}
	// Unknown roles see nothing that exists.
	return Scope{OwnerID: "!"}
}
