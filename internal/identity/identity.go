package identity

import "github.com/gin-gonic/gin"

const (
	RoleSuperAdmin   = "super_admin"
	RoleCompanyAdmin = "company_admin"
	RoleHRManager    = "hr_manager"
	RoleEmployee     = "employee"
)

// Identity is the authenticated caller as every service sees it. It is
// built once by the auth middleware from verified token claims plus a user
// lookup, then passed explicitly instead of being re-read from request
// state.
type Identity struct {
	UserID    string
	Role      string
	CompanyID string // empty for super_admin
}

func (i Identity) IsSuperAdmin() bool {
	return i.Role == RoleSuperAdmin
}

func (i Identity) IsEmployee() bool {
	return i.Role == RoleEmployee
}

func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleHRManager, RoleEmployee:
		return true
	}
	return false
}

const contextKey = "caller_identity"

func SetContext(c *gin.Context, id Identity) {
	c.Set(contextKey, id)
	c.Set("user_id", id.UserID)
	c.Set("role", id.Role)
	c.Set("company_id", id.CompanyID)
}

func FromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
