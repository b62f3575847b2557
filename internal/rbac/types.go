package rbac

// Role represents a staff role in the course hierarchy
type Role string

// RoleDefinition defines a role and its privilege level. Level 0 is
// reserved: unrecognized roles resolve to 0 and carry no privilege.
type RoleDefinition struct {
	Name  Role
	Level int
}
