package models

import "time"

// AdminRole determines the permission grid and the position in the role
// hierarchy used for admin-on-admin actions.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
	RoleModerator  AdminRole = "moderator"
	RoleSupport    AdminRole = "support"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 30 * time.Minute
)

// PermissionGrid maps module name to named action booleans.
type PermissionGrid map[string]map[string]bool

// Admin represents a platform administrator.
type Admin struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	Password      string         `bson:"-" json:"password,omitempty"`
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	Role          AdminRole      `bson:"role" json:"role"`
	Permissions   PermissionGrid `bson:"permissions" json:"permissions"`
	Status        AccountStatus  `bson:"status" json:"status"`
	LoginAttempts int            `bson:"loginAttempts" json:"-"`
	LockUntil     *time.Time     `bson:"lockUntil,omitempty" json:"-"`
	LastActiveAt  time.Time      `bson:"lastActiveAt" json:"lastActiveAt,omitzero"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// moduleActions lists every module and the actions it supports. The grid is
// always rewritten in full from the role, never patched.
var moduleActions = map[string][]string{
	"users":     {"read", "write", "delete"},
	"providers": {"read", "write", "delete", "verify"},
	"services":  {"read", "write", "delete"},
	"bookings":  {"read", "write", "delete"},
	"reviews":   {"read", "moderate", "delete"},
	"admins":    {"read", "write", "delete"},
	"settings":  {"read", "write"},
	"analytics": {"read"},
}

// roleLevels is a strict total order used for admin-on-admin actions.
var roleLevels = map[AdminRole]int{
	RoleSuperAdmin: 4,
	RoleAdmin:      3,
	RoleModerator:  2,
	RoleSupport:    1,
}

// DerivePermissions builds the full permission grid for a role. Called at
// construction and on every role change; the previous grid is discarded.
func DerivePermissions(role AdminRole) PermissionGrid {
	grid := make(PermissionGrid, len(moduleActions))
	for module, actions := range moduleActions {
		grid[module] = make(map[string]bool, len(actions))
		for _, action := range actions {
			grid[module][action] = false
		}
	}

	grant := func(module string, actions ...string) {
		for _, action := range actions {
			grid[module][action] = true
		}
	}

	switch role {
	case RoleSuperAdmin:
		for module, actions := range moduleActions {
			grant(module, actions...)
		}
	case RoleAdmin:
		for module, actions := range moduleActions {
			if module == "admins" || module == "settings" {
				continue
			}
			grant(module, actions...)
		}
	case RoleModerator:
		grant("reviews", "read", "moderate", "delete")
		grant("users", "read")
		grant("providers", "read")
		grant("services", "read")
		grant("bookings", "read")
	case RoleSupport:
		grant("bookings", "read", "write")
		grant("users", "read")
	}

	return grid
}

// SetRole assigns the role and rewrites the whole permission grid.
func (a *Admin) SetRole(role AdminRole) {
	a.Role = role
	a.Permissions = DerivePermissions(role)
}

// HasPermission checks the grid for the given module and action.
// super_admin short-circuits to always-allowed.
func (a *Admin) HasPermission(module, action string) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	actions, ok := a.Permissions[module]
	if !ok {
		return false
	}
	return actions[action]
}

// CanManage reports whether this admin may act on the target admin. A
// super_admin bypasses the hierarchy; everyone else needs a strictly higher
// role level than the target.
func (a *Admin) CanManage(target *Admin) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	return roleLevels[a.Role] > roleLevels[target.Role]
}

// IsLocked reports whether the lockout window is still open at now.
func (a *Admin) IsLocked(now time.Time) bool {
	return a.LockUntil != nil && now.Before(*a.LockUntil)
}

// RegisterFailedLogin counts a failed password match and locks the account
// for 30 minutes once the limit is reached.
func (a *Admin) RegisterFailedLogin(now time.Time) {
	if a.LockUntil != nil && !now.Before(*a.LockUntil) {
		// Expired lock: the counter restarts with this failure.
		a.LockUntil = nil
		a.LoginAttempts = 0
	}
	a.LoginAttempts++
	if a.LoginAttempts >= maxLoginAttempts {
		until := now.Add(lockoutDuration)
		a.LockUntil = &until
	}
}

// ResetLoginAttempts clears lockout state after a successful login.
func (a *Admin) ResetLoginAttempts() {
	a.LoginAttempts = 0
	a.LockUntil = nil
}

// IsActive reports whether the admin may act as a principal.
func (a *Admin) IsActive() bool {
	return a.Status == StatusActive
}
