package auth

import (
	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
)

// Action is a coarse operation class used by the access policy
type Action string

const (
	ActionList   Action = "list"
	ActionGet    Action = "get"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names an entity family governed by the access policy
type Resource string

const (
	ResourceUser    Resource = "user"
	ResourceProfile Resource = "profile"
	ResourceStudent Resource = "student"
	ResourceTeacher Resource = "teacher"
	ResourceClass   Resource = "class"
	ResourceSubject Resource = "subject"
)

var allRoles = []models.RoleType{models.RoleAdmin, models.RoleTeacher, models.RoleStudent}
var adminOnly = []models.RoleType{models.RoleAdmin}
var adminAndTeacher = []models.RoleType{models.RoleAdmin, models.RoleTeacher}

// rolePolicy is the single source of truth for role sufficiency. It answers
// "may this role attempt this action at all"; row-level ownership and
// visibility checks happen in the services after the record is loaded.
// Role sufficiency is checked before any fetch, so a role that is denied
// outright gets a 403 even when the target record does not exist.
var rolePolicy = map[Resource]map[Action][]models.RoleType{
	ResourceUser: {
		ActionList:   adminOnly,
		ActionGet:    allRoles, // admin-or-self enforced after fetch
		ActionCreate: adminOnly,
		ActionUpdate: allRoles, // admin-or-self enforced after fetch
		ActionDelete: adminOnly,
	},
	ResourceProfile: {
		ActionList:   allRoles,
		ActionGet:    allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: adminOnly,
	},
	ResourceStudent: {
		ActionList:   allRoles,
		ActionGet:    allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: adminOnly,
	},
	ResourceTeacher: {
		ActionList:   adminAndTeacher,
		ActionGet:    adminAndTeacher,
		ActionCreate: adminAndTeacher,
		ActionUpdate: adminAndTeacher,
		ActionDelete: adminOnly,
	},
	ResourceClass: {
		ActionList:   allRoles,
		ActionGet:    allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceSubject: {
		ActionList:   allRoles,
		ActionGet:    allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
}

// Allowed reports whether the identity's role set is sufficient for the action
func Allowed(resource Resource, action Action, identity Identity) bool {
	actions, ok := rolePolicy[resource]
	if !ok {
		return false
	}
	roles, ok := actions[action]
	if !ok {
		return false
	}
	return identity.HasAnyRole(roles...)
}

// Require returns a forbidden error when the identity's role set is not
// sufficient for the action
func Require(resource Resource, action Action, identity Identity) error {
	if !Allowed(resource, action, identity) {
		return apperrors.NewForbiddenError("you do not have permission for this action")
	}
	return nil
}

// RequireOwner enforces an own-record rule on an already loaded record.
// Admins bypass ownership. An unresolved identity can never satisfy it.
func RequireOwner(identity Identity, ownerUserID int64) error {
	if identity.IsAdmin() {
		return nil
	}
	if !identity.Resolved() || identity.UserID != ownerUserID {
		return apperrors.NewForbiddenError("you can only access your own record")
	}
	return nil
}

// CanViewProfile applies profile visibility on a loaded profile record.
// Admins see everything; teachers see everything except admin-owned
// profiles; students see only their own.
func CanViewProfile(identity Identity, profile *models.Profile) bool {
	if identity.IsAdmin() {
		return true
	}
	if identity.Resolved() && profile.UserID == identity.UserID {
		return true
	}
	if identity.HasRole(models.RoleTeacher) {
		return !profile.IsAdminOwned
	}
	return false
}

// CanViewStudent applies student record visibility on a loaded record.
// Admins and teachers see every student; students see only their own.
func CanViewStudent(identity Identity, student *models.Student) bool {
	if identity.HasAnyRole(models.RoleAdmin, models.RoleTeacher) {
		return true
	}
	return identity.Resolved() && student.UserID == identity.UserID
}

// CanViewTeacher applies teacher record visibility on a loaded record.
// Admins see every teacher; teachers see only their own record.
func CanViewTeacher(identity Identity, teacher *models.Teacher) bool {
	if identity.IsAdmin() {
		return true
	}
	if identity.HasRole(models.RoleTeacher) {
		return identity.Resolved() && teacher.UserID == identity.UserID
	}
	return false
}
