package auth

import (
	"errors"
	"testing"

	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
)

func adminIdentity() Identity {
	return Identity{UserID: 1, Email: "admin@example.com", Roles: []models.RoleType{models.RoleAdmin}}
}

func teacherIdentity(userID int64) Identity {
	return Identity{UserID: userID, Email: "teacher@example.com", Roles: []models.RoleType{models.RoleTeacher}}
}

func studentIdentity(userID int64) Identity {
	return Identity{UserID: userID, Email: "student@example.com", Roles: []models.RoleType{models.RoleStudent}}
}

func TestAllowedMatrix(t *testing.T) {
	admin := adminIdentity()
	teacher := teacherIdentity(2)
	student := studentIdentity(3)

	tests := []struct {
		name     string
		resource Resource
		action   Action
		identity Identity
		want     bool
	}{
		{"admin lists users", ResourceUser, ActionList, admin, true},
		{"teacher cannot list users", ResourceUser, ActionList, teacher, false},
		{"student cannot create users", ResourceUser, ActionCreate, student, false},
		{"student may attempt user get", ResourceUser, ActionGet, student, true},
		{"student may attempt user update", ResourceUser, ActionUpdate, student, true},
		{"teacher cannot delete users", ResourceUser, ActionDelete, teacher, false},

		{"student lists profiles", ResourceProfile, ActionList, student, true},
		{"student creates profile", ResourceProfile, ActionCreate, student, true},
		{"teacher cannot delete profile", ResourceProfile, ActionDelete, teacher, false},
		{"admin deletes profile", ResourceProfile, ActionDelete, admin, true},

		{"teacher lists students", ResourceStudent, ActionList, teacher, true},
		{"student may attempt student get", ResourceStudent, ActionGet, student, true},
		{"student cannot delete students", ResourceStudent, ActionDelete, student, false},

		{"student denied teacher list", ResourceTeacher, ActionList, student, false},
		{"student denied teacher get", ResourceTeacher, ActionGet, student, false},
		{"teacher lists teachers", ResourceTeacher, ActionList, teacher, true},
		{"teacher cannot delete teachers", ResourceTeacher, ActionDelete, teacher, false},

		{"student reads classes", ResourceClass, ActionGet, student, true},
		{"teacher cannot create classes", ResourceClass, ActionCreate, teacher, false},
		{"admin updates classes", ResourceClass, ActionUpdate, admin, true},

		{"student reads subjects", ResourceSubject, ActionList, student, true},
		{"student cannot update subjects", ResourceSubject, ActionUpdate, student, false},
		{"teacher cannot delete subjects", ResourceSubject, ActionDelete, teacher, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.resource, tt.action, tt.identity); got != tt.want {
				t.Errorf("Allowed(%s, %s) = %v, want %v", tt.resource, tt.action, got, tt.want)
			}
		})
	}
}

func TestRequireReturnsForbidden(t *testing.T) {
	err := Require(ResourceTeacher, ActionGet, studentIdentity(3))
	if err == nil {
		t.Fatal("expected an error for a denied role")
	}
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("error = %v, want wrapped ErrPermissionDenied", err)
	}

	if err := Require(ResourceTeacher, ActionGet, teacherIdentity(2)); err != nil {
		t.Errorf("unexpected error for allowed role: %v", err)
	}
}

func TestRequireOwner(t *testing.T) {
	if err := RequireOwner(adminIdentity(), 99); err != nil {
		t.Errorf("admin should bypass ownership, got %v", err)
	}

	if err := RequireOwner(studentIdentity(3), 3); err != nil {
		t.Errorf("owner should pass, got %v", err)
	}

	if err := RequireOwner(studentIdentity(3), 4); err == nil {
		t.Error("non-owner should be rejected")
	}

	unresolved := Identity{UserID: 0, Roles: []models.RoleType{models.RoleStudent}}
	if err := RequireOwner(unresolved, 0); err == nil {
		t.Error("unresolved identity should never satisfy ownership")
	}
}

func TestCanViewProfile(t *testing.T) {
	adminOwned := &models.Profile{ID: 1, UserID: 1, IsAdminOwned: true}
	regular := &models.Profile{ID: 2, UserID: 3, IsAdminOwned: false}

	if !CanViewProfile(adminIdentity(), adminOwned) {
		t.Error("admin should see admin-owned profiles")
	}
	if CanViewProfile(teacherIdentity(2), adminOwned) {
		t.Error("teacher should not see admin-owned profiles")
	}
	if !CanViewProfile(teacherIdentity(2), regular) {
		t.Error("teacher should see regular profiles")
	}
	if !CanViewProfile(studentIdentity(3), regular) {
		t.Error("student should see their own profile")
	}
	if CanViewProfile(studentIdentity(4), regular) {
		t.Error("student should not see another user's profile")
	}

	// Owner visibility wins even for an admin-owned record
	ownAdminProfile := &models.Profile{ID: 3, UserID: 2, IsAdminOwned: true}
	if !CanViewProfile(teacherIdentity(2), ownAdminProfile) {
		t.Error("owner should always see their own profile")
	}
}

func TestCanViewStudent(t *testing.T) {
	record := &models.Student{ID: 1, UserID: 3}

	if !CanViewStudent(adminIdentity(), record) {
		t.Error("admin should see any student record")
	}
	if !CanViewStudent(teacherIdentity(2), record) {
		t.Error("teacher should see any student record")
	}
	if !CanViewStudent(studentIdentity(3), record) {
		t.Error("student should see their own record")
	}
	if CanViewStudent(studentIdentity(4), record) {
		t.Error("student should not see another student's record")
	}
}

func TestCanViewTeacher(t *testing.T) {
	record := &models.Teacher{ID: 1, UserID: 2}

	if !CanViewTeacher(adminIdentity(), record) {
		t.Error("admin should see any teacher record")
	}
	if !CanViewTeacher(teacherIdentity(2), record) {
		t.Error("teacher should see their own record")
	}
	if CanViewTeacher(teacherIdentity(5), record) {
		t.Error("teacher should not see another teacher's record")
	}
	if CanViewTeacher(studentIdentity(3), record) {
		t.Error("student should never see teacher records")
	}
}
