package policy_test

import (
	"testing"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"

	"github.com/stretchr/testify/assert"
)

func deptPtr(id uint) *uint { return &id }

func citizen(id string) policy.Actor {
	return policy.Actor{UserID: id, Role: models.RoleCitizen}
}

func officer(id string, dept uint) policy.Actor {
	return policy.Actor{UserID: id, Role: models.RoleOfficer, DepartmentID: deptPtr(dept)}
}

func admin(id string) policy.Actor {
	return policy.Actor{UserID: id, Role: models.RoleAdmin}
}

// TestCanRead covers the ownership/department grid: a citizen reads a
// complaint iff they own it, an officer iff the departments match, an admin
// always.
func TestCanRead(t *testing.T) {
	complaint := &models.Complaint{ID: 7, UserID: "u1", DepartmentID: 2}

	tests := []struct {
		name  string
		actor policy.Actor
		want  bool
	}{
		{"owning citizen", citizen("u1"), true},
		{"other citizen", citizen("u2"), false},
		{"officer of department", officer("o1", 2), true},
		{"officer of other department", officer("o2", 3), false},
		{"officer with no department", policy.Actor{UserID: "o3", Role: models.RoleOfficer}, false},
		{"admin", admin("a1"), true},
		{"unknown role", policy.Actor{UserID: "x", Role: models.Role("ghost")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanRead(tt.actor, complaint))
		})
	}
}

// TestCanTransition: only an officer whose department matches may change
// status. Admins are excluded on purpose.
func TestCanTransition(t *testing.T) {
	complaint := &models.Complaint{ID: 7, UserID: "u1", DepartmentID: 2}

	assert.True(t, policy.CanTransition(officer("o1", 2), complaint))
	assert.False(t, policy.CanTransition(officer("o2", 3), complaint))
	assert.False(t, policy.CanTransition(citizen("u1"), complaint), "owners cannot transition their own complaints")
	assert.False(t, policy.CanTransition(admin("a1"), complaint), "admins read and delete, never transition")
}

func TestCanCreate(t *testing.T) {
	assert.True(t, policy.CanCreate(citizen("u1")))
	assert.False(t, policy.CanCreate(officer("o1", 2)))
	assert.False(t, policy.CanCreate(admin("a1")))
}

func TestCanDelete(t *testing.T) {
	assert.False(t, policy.CanDelete(citizen("u1")))
	assert.False(t, policy.CanDelete(officer("o1", 2)))
	assert.True(t, policy.CanDelete(admin("a1")))
}

func TestAdminOnlyViews(t *testing.T) {
	assert.True(t, policy.CanViewStats(admin("a1")))
	assert.False(t, policy.CanViewStats(officer("o1", 2)))
	assert.False(t, policy.CanViewStats(citizen("u1")))

	assert.True(t, policy.CanManageDepartments(admin("a1")))
	assert.False(t, policy.CanManageDepartments(citizen("u1")))
}

func TestScopeFor(t *testing.T) {
	// Citizen: own complaints only.
	s := policy.ScopeFor(citizen("u1"))
	assert.Equal(t, "u1", s.OwnerID)
	assert.Nil(t, s.DepartmentID)

	// Officer: department slice.
	s = policy.ScopeFor(officer("o1", 2))
	assert.Empty(t, s.OwnerID)
	if assert.NotNil(t, s.DepartmentID) {
		assert.Equal(t, uint(2), *s.DepartmentID)
	}

	// Admin: unrestricted.
	s = policy.ScopeFor(admin("a1"))
	assert.Empty(t, s.OwnerID)
	assert.Nil(t, s.DepartmentID)
}

// TestCanReadRecord_MatchesCanRead keeps the event-payload shortcut in sync
// with the full predicate.
func TestCanReadRecord_MatchesCanRead(t *testing.T) {
	complaint := &models.Complaint{ID: 9, UserID: "u9", DepartmentID: 4}
	actors := []policy.Actor{
		citizen("u9"), citizen("u1"),
		officer("o1", 4), officer("o2", 5),
		admin("a1"),
	}

	for _, a := range actors {
		assert.Equal(t,
			policy.CanRead(a, complaint),
			policy.CanReadRecord(a, complaint.UserID, complaint.DepartmentID),
			"actor %s/%s", a.UserID, a.Role)
	}
}
