package systemuser

import "time"

// User is a root-level admin account. Names are globally unique.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultRole is assigned when no role is supplied at creation.
const DefaultRole = "admin"

// PrincipalID implements auth.Principal
func (u *User) PrincipalID() int64 { return u.ID }

// Active implements auth.Principal
func (u *User) Active() bool { return u.IsActive }

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateUserInput struct {
	Name         string
	Email        string
	PasswordHash *string
	Role         string
	IsActive     bool
}
