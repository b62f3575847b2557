package presets

import "teesheet-service/internal/rbac"

const (
	RoleStaff   rbac.Role = "STAFF"
	RoleManager rbac.Role = "MANAGER"
	RoleOwner   rbac.Role = "OWNER"
)

// CourseStaff returns the fixed role hierarchy for golf-course staff
func CourseStaff() rbac.Config {
	return rbac.Config{
		Roles: []rbac.RoleDefinition{
			{Name: RoleOwner, Level: 3},
			{Name: RoleManager, Level: 2},
			{Name: RoleStaff, Level: 1},
		},
	}
}
