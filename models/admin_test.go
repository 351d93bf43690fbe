package models

import (
	"testing"
	"time"
)

func TestDerivePermissionsPerRole(t *testing.T) {
	tests := []struct {
		role   AdminRole
		module string
		action string
		want   bool
	}{
		{RoleSuperAdmin, "admins", "write", true},
		{RoleSuperAdmin, "settings", "write", true},
		{RoleAdmin, "users", "delete", true},
		{RoleAdmin, "admins", "write", false},
		{RoleAdmin, "settings", "write", false},
		{RoleModerator, "reviews", "moderate", true},
		{RoleModerator, "reviews", "delete", true},
		{RoleModerator, "users", "read", true},
		{RoleModerator, "users", "write", false},
		{RoleModerator, "settings", "write", false},
		{RoleSupport, "bookings", "write", true},
		{RoleSupport, "users", "read", true},
		{RoleSupport, "users", "write", false},
		{RoleSupport, "reviews", "delete", false},
	}

	for _, tt := range tests {
		a := &Admin{}
		a.SetRole(tt.role)
		if got := a.HasPermission(tt.module, tt.action); got != tt.want {
			t.Fatalf("%s %s/%s: got %v, want %v", tt.role, tt.module, tt.action, got, tt.want)
		}
	}
}

func TestSetRoleRewritesWholeGrid(t *testing.T) {
	a := &Admin{}
	a.SetRole(RoleAdmin)
	if !a.HasPermission("users", "delete") {
		t.Fatal("admin should delete users")
	}

	a.SetRole(RoleSupport)
	if a.HasPermission("users", "delete") {
		t.Fatal("demotion to support must drop the users/delete grant")
	}
	if !a.HasPermission("bookings", "write") {
		t.Fatal("support should write bookings")
	}
}

func TestCanManageHierarchy(t *testing.T) {
	superAdmin := &Admin{}
	superAdmin.SetRole(RoleSuperAdmin)
	admin := &Admin{}
	admin.SetRole(RoleAdmin)
	moderator := &Admin{}
	moderator.SetRole(RoleModerator)

	if !superAdmin.CanManage(admin) {
		t.Fatal("super_admin should manage admin")
	}
	if !superAdmin.CanManage(superAdmin) {
		t.Fatal("super_admin bypasses the hierarchy entirely")
	}
	if !admin.CanManage(moderator) {
		t.Fatal("admin should manage moderator")
	}
	if admin.CanManage(admin) {
		t.Fatal("equal roles must not manage each other")
	}
	if moderator.CanManage(admin) {
		t.Fatal("lower roles must not manage higher ones")
	}
}

func TestLoginLockout(t *testing.T) {
	a := &Admin{}
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		a.RegisterFailedLogin(now)
		if a.IsLocked(now) {
			t.Fatalf("locked after %d attempts", i+1)
		}
	}

	a.RegisterFailedLogin(now)
	if !a.IsLocked(now) {
		t.Fatal("expected lock after 5 failed attempts")
	}
	if a.IsLocked(now.Add(31 * time.Minute)) {
		t.Fatal("lock should expire after 30 minutes")
	}

	// A failure after expiry restarts the counter instead of re-locking.
	later := now.Add(31 * time.Minute)
	a.RegisterFailedLogin(later)
	if a.IsLocked(later) {
		t.Fatal("single failure after expiry must not lock")
	}
	if a.LoginAttempts != 1 {
		t.Fatalf("expected counter restart at 1, got %d", a.LoginAttempts)
	}
}

func TestResetLoginAttempts(t *testing.T) {
	a := &Admin{}
	now := time.Now()
	for i := 0; i < 5; i++ {
		a.RegisterFailedLogin(now)
	}
	a.ResetLoginAttempts()
	if a.IsLocked(now) || a.LoginAttempts != 0 || a.LockUntil != nil {
		t.Fatal("reset must clear all lockout state")
	}
}
