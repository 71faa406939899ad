package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models"
)

// identityKey is the gin context key the auth middleware stores the caller under
const identityKey = "identity"

// Identity describes the authenticated caller of a request. It is built by
// the auth middleware from token claims and passed explicitly to the policy
// layer; nothing below the middleware reads request-global state.
type Identity struct {
	UserID int64
	Email  string
	Roles  []models.RoleType
}

// HasRole reports whether the identity carries the given role
func (i Identity) HasRole(role models.RoleType) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the identity carries at least one of the given roles
func (i Identity) HasAnyRole(roles ...models.RoleType) bool {
	for _, r := range roles {
		if i.HasRole(r) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity carries the ADMIN role
func (i Identity) IsAdmin() bool {
	return i.HasRole(models.RoleAdmin)
}

// Resolved reports whether the identity maps to a known user record.
// An unresolved identity fails every own-record rule.
func (i Identity) Resolved() bool {
	return i.UserID > 0
}

// SetIdentity stores the caller identity on the request context
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity retrieves the caller identity from the request context
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
