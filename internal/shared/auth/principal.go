// Package auth defines the role set and the authenticated request
// identity shared by every domain.
package auth

import "github.com/google/uuid"

// Role is the closed set of user roles, least to most privileged.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:      0,
	RoleModerator: 1,
	RoleAdmin:     2,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// Principal is the identity attached to an authenticated request.
// It reflects the token claims, i.e. the user's role at issuance time.
type Principal struct {
	ID        uuid.UUID
	Username  string
	Role      Role
	Superuser bool
}

// IsAdmin reports admin-level privilege. Superusers bypass role checks.
func (p Principal) IsAdmin() bool {
	return p.Superuser || p.Role == RoleAdmin
}

// IsStaff reports moderator-or-above privilege.
func (p Principal) IsStaff() bool {
	return p.IsAdmin() || p.Role == RoleModerator
}
