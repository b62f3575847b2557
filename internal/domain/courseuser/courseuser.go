package courseuser

import "time"

// User is a staff account scoped to a single golf course. Usernames are
// unique per (username, golf_course_id), not globally.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
	GolfCourseID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrincipalID implements auth.Principal
func (u *User) PrincipalID() int64 { return u.ID }

// Active implements auth.Principal
func (u *User) Active() bool { return u.IsActive }

// TenantID reports the golf course this account belongs to.
func (u *User) TenantID() int64 { return u.GolfCourseID }

type CreateUserInput struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Password     string
	Role         string
	GolfCourseID int64
}

// UpdateUserInput applies partial updates; nil fields are left untouched.
type UpdateUserInput struct {
	Username     *string
	Email        *string
	FirstName    *string
	LastName     *string
	PasswordHash *string
	Role         *string
	IsActive     *bool
}
