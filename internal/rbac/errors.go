package rbac

import "errors"

var (
	ErrDenied      = errors.New("authorization denied")
	ErrInvalidRole = errors.New("invalid role")
)

const (
	errConfigRolesEmpty            = "rbac config: roles must not be empty"
	errConfigRoleNameEmpty         = "rbac config: role name must not be empty"
	errConfigRoleLevelNotPositive  = "rbac config: role %s has non-positive level %d"
	errConfigDuplicateRoleNameFmt  = "rbac config: duplicate role name: %s"
	errConfigDuplicateRoleLevelFmt = "rbac config: duplicate role level %d (roles %s and %s)"
	errMustNewPanicFmt             = "rbac.MustNew: %v"
)
