package rbac_test

import (
	"errors"
	"testing"

	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"
)

func newChecker(t *testing.T) *rbac.Checker {
	t.Helper()
	rc, err := rbac.New(presets.CourseStaff())
	if err != nil {
		t.Fatalf("failed to create checker: %v", err)
	}
	return rc
}

func TestAtLeast(t *testing.T) {
	checker := newChecker(t)

	tests := []struct {
		name     string
		role     rbac.Role
		required rbac.Role
		expected bool
	}{
		{"Owner >= Owner", presets.RoleOwner, presets.RoleOwner, true},
		{"Owner >= Manager", presets.RoleOwner, presets.RoleManager, true},
		{"Owner >= Staff", presets.RoleOwner, presets.RoleStaff, true},
		{"Manager >= Manager", presets.RoleManager, presets.RoleManager, true},
		{"Manager >= Staff", presets.RoleManager, presets.RoleStaff, true},
		{"Manager < Owner", presets.RoleManager, presets.RoleOwner, false},
		{"Staff >= Staff", presets.RoleStaff, presets.RoleStaff, true},
		{"Staff < Manager", presets.RoleStaff, presets.RoleManager, false},
		{"Staff < Owner", presets.RoleStaff, presets.RoleOwner, false},
		{"Unknown role carries no privilege", rbac.Role("SUPERVISOR"), presets.RoleStaff, false},
		{"Lowercase variant is unknown", rbac.Role("staff"), presets.RoleStaff, false},
		{"Unknown threshold never satisfied", presets.RoleOwner, rbac.Role("ROOT"), false},
		{"Empty role denied", rbac.Role(""), presets.RoleStaff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checker.AtLeast(tt.role, tt.required)
			if result != tt.expected {
				t.Errorf("AtLeast(%s, %s) = %v, expected %v", tt.role, tt.required, result, tt.expected)
			}
		})
	}
}

func TestCanManage(t *testing.T) {
	checker := newChecker(t)

	tests := []struct {
		name       string
		actorRole  rbac.Role
		actorID    int64
		targetRole rbac.Role
		targetID   int64
		expected   bool
	}{
		{"Owner manages manager", presets.RoleOwner, 1, presets.RoleManager, 2, true},
		{"Owner manages staff", presets.RoleOwner, 1, presets.RoleStaff, 2, true},
		{"Owner manages peer owner", presets.RoleOwner, 1, presets.RoleOwner, 2, true},
		{"Manager manages staff", presets.RoleManager, 1, presets.RoleStaff, 2, true},
		{"Manager manages peer manager", presets.RoleManager, 1, presets.RoleManager, 2, true},
		{"Manager cannot manage owner", presets.RoleManager, 1, presets.RoleOwner, 2, false},
		{"Staff manages peer staff", presets.RoleStaff, 1, presets.RoleStaff, 2, true},
		{"Staff cannot manage manager", presets.RoleStaff, 1, presets.RoleManager, 2, false},
		{"Never manages own record", presets.RoleOwner, 7, presets.RoleStaff, 7, false},
		{"Unknown actor role denied", rbac.Role("SUPERUSER"), 1, presets.RoleStaff, 2, false},
		{"Unknown target manageable by anyone ranked", presets.RoleStaff, 1, rbac.Role("GHOST"), 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checker.CanManage(tt.actorRole, tt.actorID, tt.targetRole, tt.targetID)
			if result != tt.expected {
				t.Errorf("CanManage(%s, %d, %s, %d) = %v, expected %v",
					tt.actorRole, tt.actorID, tt.targetRole, tt.targetID, result, tt.expected)
			}
		})
	}
}

func TestValidateRole(t *testing.T) {
	checker := newChecker(t)

	tests := []struct {
		name      string
		role      string
		expected  rbac.Role
		shouldErr bool
	}{
		{"Valid staff", "STAFF", presets.RoleStaff, false},
		{"Valid manager", "MANAGER", presets.RoleManager, false},
		{"Valid owner", "OWNER", presets.RoleOwner, false},
		{"Invalid role", "superuser", "", true},
		{"Empty role", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.ValidateRole(tt.role)
			if tt.shouldErr {
				if err == nil {
					t.Errorf("ValidateRole(%s) expected error, got nil", tt.role)
				}
				if !errors.Is(err, rbac.ErrInvalidRole) {
					t.Errorf("ValidateRole(%s) error should wrap ErrInvalidRole, got: %v", tt.role, err)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateRole(%s) unexpected error: %v", tt.role, err)
				}
				if result != tt.expected {
					t.Errorf("ValidateRole(%s) = %s, expected %s", tt.role, result, tt.expected)
				}
			}
		})
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		cfg       rbac.Config
		shouldErr bool
	}{
		{"Valid preset", presets.CourseStaff(), false},
		{"Empty roles", rbac.Config{}, true},
		{"Empty role name", rbac.Config{Roles: []rbac.RoleDefinition{{Name: "", Level: 1}}}, true},
		{"Zero level reserved", rbac.Config{Roles: []rbac.RoleDefinition{{Name: "X", Level: 0}}}, true},
		{"Duplicate name", rbac.Config{Roles: []rbac.RoleDefinition{{Name: "X", Level: 1}, {Name: "X", Level: 2}}}, true},
		{"Duplicate level", rbac.Config{Roles: []rbac.RoleDefinition{{Name: "X", Level: 1}, {Name: "Y", Level: 1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rbac.New(tt.cfg)
			if tt.shouldErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	checker := newChecker(t)

	if got := checker.Level(presets.RoleOwner); got != 3 {
		t.Errorf("Level(OWNER) = %d, expected 3", got)
	}
	if got := checker.Level(presets.RoleManager); got != 2 {
		t.Errorf("Level(MANAGER) = %d, expected 2", got)
	}
	if got := checker.Level(presets.RoleStaff); got != 1 {
		t.Errorf("Level(STAFF) = %d, expected 1", got)
	}
	if got := checker.Level(rbac.Role("nonsense")); got != 0 {
		t.Errorf("Level(unknown) = %d, expected 0", got)
	}
}
